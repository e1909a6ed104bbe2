package main

import "testing"

func mapGetter(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	got, err := loadSettings(mapGetter(nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != defaultSettings() {
		t.Fatalf("got %#v want %#v", got, defaultSettings())
	}
}

func TestLoadSettings_Overrides(t *testing.T) {
	got, err := loadSettings(mapGetter(map[string]string{
		"lambdagreet:memorySize":       "256",
		"lambdagreet:timeout":          "10",
		"lambdagreet:architecture":     "x86_64",
		"lambdagreet:logRetentionDays": "30",
		"lambdagreet:artifactPath":     "/tmp/greeter.zip",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := settings{
		MemorySize:       256,
		Timeout:          10,
		Architecture:     "x86_64",
		LogRetentionDays: 30,
		ArtifactPath:     "/tmp/greeter.zip",
	}
	if got != want {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestLoadSettings_EmptyValuesUseDefaults(t *testing.T) {
	got, err := loadSettings(mapGetter(map[string]string{
		"lambdagreet:memorySize":   "",
		"lambdagreet:architecture": "",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.MemorySize != 128 || got.Architecture != "arm64" {
		t.Fatalf("got %#v", got)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]string
	}{
		{name: "non-numeric memory", cfg: map[string]string{"lambdagreet:memorySize": "lots"}},
		{name: "zero timeout", cfg: map[string]string{"lambdagreet:timeout": "0"}},
		{name: "negative retention", cfg: map[string]string{"lambdagreet:logRetentionDays": "-1"}},
		{name: "unknown architecture", cfg: map[string]string{"lambdagreet:architecture": "mips"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadSettings(mapGetter(tt.cfg)); err == nil {
				t.Errorf("expected error for %v", tt.cfg)
			}
		})
	}
}
