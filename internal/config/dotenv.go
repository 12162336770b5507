package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to ~/.skills-scout/.env.
func DotEnvPath(env Env) (string, error) {
	dir, err := ScoutDir(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.skills-scout/.env. A missing file yields an empty map.
func LoadDotEnv(env Env) (map[string]string, error) {
	p, err := DotEnvPath(env)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}
	vals, err := godotenv.Read(p)
	if err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return vals, nil
}

// GetConfigValue returns the effective value for key, using the process
// environment first and falling back to ~/.skills-scout/.env.
func GetConfigValue(env Env, key string) (string, error) {
	if v := env.Getenv(key); v != "" {
		return v, nil
	}
	dotenv, err := LoadDotEnv(env)
	if err != nil {
		return "", err
	}
	return dotenv[key], nil
}
