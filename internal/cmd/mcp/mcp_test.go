package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "")
	t.Setenv("UNREAL_MCP_HTTP_ADDR", "")
	t.Setenv("UNREAL_MCP_TRANSPORT", "")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.EngineAddr != "127.0.0.1:55557" {
		t.Fatalf("expected default engine addr, got %q", cfg.EngineAddr)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.APIToken != "" {
		t.Fatalf("expected empty api token, got %q", cfg.APIToken)
	}
	if cfg.JournalPath != "" {
		t.Fatalf("expected empty journal path, got %q", cfg.JournalPath)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "env-engine:1")
	t.Setenv("UNREAL_MCP_HTTP_ADDR", "env-http:2")
	t.Setenv("UNREAL_MCP_TRANSPORT", "http")
	t.Setenv("UNREAL_MCP_API_TOKEN", "env-token")
	t.Setenv("UNREAL_MCP_JOURNAL_PATH", "env.db")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.EngineAddr != "env-engine:1" {
		t.Fatalf("expected env engine addr, got %q", cfg.EngineAddr)
	}
	if cfg.HTTPAddr != "env-http:2" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected env transport, got %q", cfg.Transport)
	}
	if cfg.APIToken != "env-token" {
		t.Fatalf("expected env api token, got %q", cfg.APIToken)
	}
	if cfg.JournalPath != "env.db" {
		t.Fatalf("expected env journal path, got %q", cfg.JournalPath)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	t.Setenv("UNREAL_MCP_ENGINE_ADDR", "env-engine:1")
	t.Setenv("UNREAL_MCP_HTTP_ADDR", "env-http:2")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	args := []string{
		"-engine-addr", "flag-engine:1",
		"-http-addr", "flag-http:2",
		"-transport", "http",
		"-api-token", "flag-token",
		"-journal", "flag.db",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.EngineAddr != "flag-engine:1" {
		t.Fatalf("expected flag engine addr, got %q", cfg.EngineAddr)
	}
	if cfg.HTTPAddr != "flag-http:2" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.APIToken != "flag-token" {
		t.Fatalf("expected flag api token, got %q", cfg.APIToken)
	}
	if cfg.JournalPath != "flag.db" {
		t.Fatalf("expected flag journal path, got %q", cfg.JournalPath)
	}
}
