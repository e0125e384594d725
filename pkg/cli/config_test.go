package cli

import (
	"path/filepath"
	"testing"
)

func tempConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	return cfg
}

func TestConfig_AddUseResolve(t *testing.T) {
	cfg := tempConfig(t)

	if err := cfg.AddContext("local", &Context{Model: "llama3.2"}); err != nil {
		t.Fatalf("AddContext error: %v", err)
	}
	if err := cfg.AddContext("remote", &Context{BaseURL: "http://gpu-box:11434"}); err != nil {
		t.Fatalf("AddContext error: %v", err)
	}

	if err := cfg.UseContext("remote"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}

	// Explicit name wins over current context.
	ctx, err := cfg.ResolveContext("local")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Name != "local" || ctx.Model != "llama3.2" {
		t.Errorf("resolved %+v", ctx)
	}

	// Empty name resolves the current context.
	ctx, err = cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Name != "remote" {
		t.Errorf("resolved %q, want remote", ctx.Name)
	}
}

func TestConfig_ResolveWithoutContextsFallsBack(t *testing.T) {
	cfg := tempConfig(t)

	ctx, err := cfg.ResolveContext("")
	if err != nil {
		t.Fatalf("ResolveContext error: %v", err)
	}
	if ctx.Name != "default" || ctx.BaseURL != "" {
		t.Errorf("fallback context = %+v", ctx)
	}
}

func TestConfig_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	ctx := &Context{Model: "mistral", System: "be brief", Timeout: 60}
	ctx.SetExtra("notes", "gpu box")
	if err := cfg.AddContext("lab", ctx); err != nil {
		t.Fatalf("AddContext error: %v", err)
	}
	if err := cfg.UseContext("lab"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if reloaded.CurrentContext != "lab" {
		t.Errorf("CurrentContext = %q, want lab", reloaded.CurrentContext)
	}
	got, err := reloaded.GetContext("lab")
	if err != nil {
		t.Fatalf("GetContext error: %v", err)
	}
	if got.Model != "mistral" || got.System != "be brief" || got.Timeout != 60 {
		t.Errorf("reloaded context = %+v", got)
	}
	if got.GetExtra("notes") != "gpu box" {
		t.Errorf("extra = %q, want %q", got.GetExtra("notes"), "gpu box")
	}
}

func TestConfig_DeleteClearsCurrent(t *testing.T) {
	cfg := tempConfig(t)

	if err := cfg.AddContext("only", &Context{}); err != nil {
		t.Fatalf("AddContext error: %v", err)
	}
	if err := cfg.UseContext("only"); err != nil {
		t.Fatalf("UseContext error: %v", err)
	}
	if err := cfg.DeleteContext("only"); err != nil {
		t.Fatalf("DeleteContext error: %v", err)
	}

	if cfg.CurrentContext != "" {
		t.Errorf("CurrentContext = %q, want empty", cfg.CurrentContext)
	}
	if err := cfg.DeleteContext("only"); err == nil {
		t.Error("deleting a missing context should fail")
	}
}
