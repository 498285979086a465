package main

import "time"

type Config struct {
	Port           string        `env:"PORT" env-default:"3000"`
	APIURL         string        `env:"API_URL" env-default:"http://localhost:8080"`
	APIPrefix      string        `env:"API_PREFIX" env-default:"/api/v1"`
	APITimeout     time.Duration `env:"API_TIMEOUT" env-default:"5s"`
	AdminPassword  string        `env:"ADMIN_PASSWORD" env-required:"true"`
	JwtSecret      string        `env:"JWT_SECRET"`
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	DefaultLang    string        `env:"DEFAULT_LANG" env-default:"en"`
}
