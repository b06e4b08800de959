package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SMTP_USER", "")

	cfg := Load()

	if cfg.ServerPort != "5000" {
		t.Fatalf("got port %q, want 5000", cfg.ServerPort)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("got addr %q, want :5000", cfg.Addr())
	}
	if cfg.MailConfigured() {
		t.Fatal("placeholder credential should not count as configured")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SMTP_USER", "real@example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	if cfg.ServerPort != "8081" {
		t.Fatalf("got port %q, want 8081", cfg.ServerPort)
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("got smtp port %d, want 2525", cfg.SMTPPort)
	}
	if !cfg.MailConfigured() {
		t.Fatal("real credential should count as configured")
	}
}
