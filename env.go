package easydb

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvLookup resolves an environment variable. It reports ok == false when the
// variable is not set.
type EnvLookup func(key string) (value string, ok bool)

// OSEnv reads the process environment.
func OSEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv looks variables up in m.
func MapEnv(m map[string]string) EnvLookup {
	return func(key string) (value string, ok bool) {
		value, ok = m[key]
		return value, ok
	}
}

// Overlay returns a lookup that consults each lookup in turn and uses the
// first one that has the key.
func Overlay(lookups ...EnvLookup) EnvLookup {
	return func(key string) (value string, ok bool) {
		for _, lookup := range lookups {
			value, ok = lookup(key)
			if ok {
				return value, ok
			}
		}
		return "", false
	}
}

// LoadEnvFile reads a .env file and returns a lookup that prefers the process
// environment and falls back to the file. The process environment is not
// modified.
func LoadEnvFile(path string) (EnvLookup, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %q: %w", path, err)
	}
	return Overlay(OSEnv, MapEnv(vars)), nil
}
