package config_test

import (
	"testing"

	"github.com/team-dbase/dbase-ai/internal/config"
)

func TestLoad_RequiredVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERPER_API_KEY", "")

	if _, err := config.Load(); err == nil {
		t.Error("expected an error when DATABASE_URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/dbase")
	if _, err := config.Load(); err == nil {
		t.Error("expected an error when SERPER_API_KEY is missing")
	}

	t.Setenv("SERPER_API_KEY", "key")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SerperURL == "" || cfg.UploadDir == "" || cfg.Port == "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/dbase")
	t.Setenv("SERPER_API_KEY", "key")
	t.Setenv("SERPER_URL", "http://localhost:9999/search")
	t.Setenv("MODEL_ID", "llama3.1-korean")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")
	t.Setenv("PORT", "4000")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SerperURL != "http://localhost:9999/search" || cfg.ModelID != "llama3.1-korean" ||
		cfg.UploadDir != "/srv/uploads" || cfg.Port != "4000" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
