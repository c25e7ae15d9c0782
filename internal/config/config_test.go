package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STARSCOPE_PROVIDER", "GITHUB_TOKEN", "STARSCOPE_USERNAME",
		"STARSCOPE_ENDPOINT", "STARSCOPE_PER_PAGE", "STARSCOPE_TOPIC_RATE",
		"STARSCOPE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Connector.Provider != "github" {
		t.Fatalf("expected default provider 'github', got %q", cfg.Connector.Provider)
	}
	if cfg.Connector.Token != "" {
		t.Fatalf("expected empty token, got %q", cfg.Connector.Token)
	}
	if cfg.Connector.PerPage != 100 {
		t.Fatalf("expected default PerPage=100, got %d", cfg.Connector.PerPage)
	}
	if cfg.Connector.TopicRate != 1 {
		t.Fatalf("expected default TopicRate=1, got %g", cfg.Connector.TopicRate)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default LogLevel='info', got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("STARSCOPE_USERNAME", "octocat")
	t.Setenv("STARSCOPE_PER_PAGE", "50")
	t.Setenv("STARSCOPE_TOPIC_RATE", "2.5")
	t.Setenv("STARSCOPE_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Connector.Token != "ghp_test" {
		t.Errorf("Token = %q, want ghp_test", cfg.Connector.Token)
	}
	if cfg.Connector.Username != "octocat" {
		t.Errorf("Username = %q, want octocat", cfg.Connector.Username)
	}
	if cfg.Connector.PerPage != 50 {
		t.Errorf("PerPage = %d, want 50", cfg.Connector.PerPage)
	}
	if cfg.Connector.TopicRate != 2.5 {
		t.Errorf("TopicRate = %g, want 2.5", cfg.Connector.TopicRate)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STARSCOPE_PER_PAGE", "abc")
	t.Setenv("STARSCOPE_TOPIC_RATE", "fast")

	cfg := Load()

	if cfg.Connector.PerPage != 100 {
		t.Errorf("PerPage = %d, want fallback 100", cfg.Connector.PerPage)
	}
	if cfg.Connector.TopicRate != 1 {
		t.Errorf("TopicRate = %g, want fallback 1", cfg.Connector.TopicRate)
	}
}

func TestValidate_Valid(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for default config, got: %v", err)
	}
}

func TestValidate_BadPerPage(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	cfg.Connector.PerPage = 500
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for per_page=500")
	}
	if !strings.Contains(err.Error(), "per_page") {
		t.Fatalf("expected error to mention 'per_page', got: %v", err)
	}
}

func TestValidate_BadTopicRate(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	cfg.Connector.TopicRate = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for topic rate 0")
	}
	if !strings.Contains(err.Error(), "topic rate") {
		t.Fatalf("expected error to mention 'topic rate', got: %v", err)
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		fallback int
		want     int
	}{
		{"empty uses fallback", "", 100, 100},
		{"valid int", "50", 100, 50},
		{"zero", "0", 100, 0},
		{"invalid falls back", "abc", 100, 100},
	}

	const key = "STARSCOPE_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)
			got := getenvInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}
