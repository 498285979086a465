package auth

import (
	"time"
)

type Config struct {
	Secret         []byte
	AdminPassword  string
	SessionTimeout time.Duration
}

// Controller sets and clears the admin flag. The flag gates the management
// pages of the UI only, the books API does not know about it.
type Controller struct {
	config Config
}

func NewController(cfg Config) *Controller {
	return &Controller{
		config: cfg,
	}
}
