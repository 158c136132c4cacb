package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpponentPolicy != PolicyUniform {
		t.Fatalf("expected default policy %q, got %q", PolicyUniform, cfg.OpponentPolicy)
	}
	if cfg.KeySize != 32 {
		t.Fatalf("expected default key size 32, got %d", cfg.KeySize)
	}
	if cfg.ShowTranscript {
		t.Fatalf("transcript display should default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FAIRDICE_OPPONENT", "greedy")
	t.Setenv("FAIRDICE_KEY_BYTES", "64")
	t.Setenv("FAIRDICE_TRANSCRIPT", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpponentPolicy != PolicyGreedy || cfg.KeySize != 64 || !cfg.ShowTranscript {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("FAIRDICE_OPPONENT", "psychic")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestLoadRejectsShortKey(t *testing.T) {
	t.Setenv("FAIRDICE_KEY_BYTES", "16")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for short key")
	}
}
