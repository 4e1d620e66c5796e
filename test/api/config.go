/*
Copyright 2026 the StorySpoil Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type TestConfig struct {
	BaseURL         string
	AuthToken       string
	Username        string
	Password        string
	RequestTimeout  time.Duration
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing, unless
// integration tests are being skipped.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         os.Getenv("API_BASE_URL"),
		AuthToken:       os.Getenv("API_AUTH_TOKEN"),
		Username:        os.Getenv("API_USERNAME"),
		Password:        os.Getenv("API_PASSWORD"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 0),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.SkipIntegration {
		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// TokenOptions returns the bearer token options described by the configuration.
func (c *TestConfig) TokenOptions() TokenOptions {
	return TokenOptions{
		StaticToken: c.AuthToken,
		Username:    c.Username,
		Password:    c.Password,
	}
}

// logRequests reports whether request lines are written, DebugLogging
// implies both request and response logging.
func (c *TestConfig) logRequests() bool {
	return c.LogRequests || c.DebugLogging
}

func (c *TestConfig) logResponses() bool {
	return c.LogResponses || c.DebugLogging
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env",    // From test/api/suites directory
		"../../test/.env",       // From test/api directory
		"../../../../test/.env", // From test/contracts/consumer/story directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
// A static token makes the login credentials optional.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	if config.BaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}

	if strings.TrimSpace(config.AuthToken) == "" {
		if config.Username == "" {
			missing = append(missing, "API_USERNAME")
		}

		if config.Password == "" {
			missing = append(missing, "API_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables (or API_AUTH_TOKEN in place of the credentials) or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
