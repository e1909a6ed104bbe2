package main

import (
	"fmt"
	"strconv"
)

// settings are the stack-tunable knobs for the greeter function.
type settings struct {
	MemorySize       int
	Timeout          int
	Architecture     string
	LogRetentionDays int
	ArtifactPath     string
}

func defaultSettings() settings {
	return settings{
		MemorySize:       128,
		Timeout:          3,
		Architecture:     "arm64",
		LogRetentionDays: 14,
		ArtifactPath:     "../dist/greeter.zip",
	}
}

// loadSettings reads lambdagreet:* keys through get (ctx.GetConfig in the program)
// and falls back to defaults for anything unset or empty.
func loadSettings(get func(key string) (string, bool)) (settings, error) {
	s := defaultSettings()

	intKey := func(key string, dst *int) error {
		v, ok := get("lambdagreet:" + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("lambdagreet:%s: %w", key, err)
		}
		if n <= 0 {
			return fmt.Errorf("lambdagreet:%s must be positive, got %d", key, n)
		}
		*dst = n
		return nil
	}

	if err := intKey("memorySize", &s.MemorySize); err != nil {
		return s, err
	}
	if err := intKey("timeout", &s.Timeout); err != nil {
		return s, err
	}
	if err := intKey("logRetentionDays", &s.LogRetentionDays); err != nil {
		return s, err
	}

	if v, ok := get("lambdagreet:architecture"); ok && v != "" {
		switch v {
		case "arm64", "x86_64":
			s.Architecture = v
		default:
			return s, fmt.Errorf("lambdagreet:architecture must be arm64 or x86_64, got %q", v)
		}
	}
	if v, ok := get("lambdagreet:artifactPath"); ok && v != "" {
		s.ArtifactPath = v
	}
	return s, nil
}
