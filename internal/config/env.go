package config

import (
	"errors"
	"os"
)

// Env is the read-only view of the process environment the pipeline needs.
type Env interface {
	HomeDir() (string, error)
	Getwd() (string, error)
	Getenv(key string) string
}

// OSEnv reads the real process environment.
type OSEnv struct{}

func (OSEnv) HomeDir() (string, error) { return os.UserHomeDir() }
func (OSEnv) Getwd() (string, error)   { return os.Getwd() }
func (OSEnv) Getenv(key string) string { return os.Getenv(key) }

// StaticEnv is a fixed environment, used by tests and embedders.
type StaticEnv struct {
	Home string
	Cwd  string
	Vars map[string]string
}

func (e StaticEnv) HomeDir() (string, error) {
	if e.Home == "" {
		return "", errors.New("home directory not set")
	}
	return e.Home, nil
}

func (e StaticEnv) Getwd() (string, error) {
	if e.Cwd == "" {
		return "", errors.New("working directory not set")
	}
	return e.Cwd, nil
}

func (e StaticEnv) Getenv(key string) string {
	return e.Vars[key]
}
