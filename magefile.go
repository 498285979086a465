//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

const binary = "bookstore-backoffice"

// Installs the application.
func Install() error {
	version, err := gitVersion()
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", "-X main.version="+version)
}

// Creates a statically linked executable for the servers the back office runs on.
// Possible platforms are "amd64" and "arm64", both on linux.
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	version, err := gitVersion()
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-o", fmt.Sprintf("%s-linux-%s", binary, platform), "-ldflags", "-X main.version="+version)
}

// Runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

func gitVersion() (string, error) {
	return sh.Output("git", "describe", "--always", "--long", "--dirty")
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "amd64", "arm64":
		return map[string]string{
			"GOOS":        "linux",
			"GOARCH":      platform,
			"CGO_ENABLED": "0",
		}, nil
	}

	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
