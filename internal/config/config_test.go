package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal bool
		expected   bool
	}{
		{"parses true", "TEST_BOOL_1", "true", false, true},
		{"parses 0", "TEST_BOOL_2", "0", true, false},
		{"uses default for empty", "TEST_BOOL_3", "", true, true},
		{"uses default for garbage", "TEST_BOOL_4", "maybe", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsBoolOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestUseMemory(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{"explicit memory flag", Config{MemoryDB: true, MongoURL: "mongodb://localhost:27017"}, true},
		{"missing mongo url forces memory", Config{MemoryDB: false, MongoURL: ""}, true},
		{"mongo configured", Config{MemoryDB: false, MongoURL: "mongodb://localhost:27017"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.UseMemory(); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}
