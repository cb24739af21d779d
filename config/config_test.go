package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_MODE", "")
	cfg := Load()

	if cfg.Storage.Mode != StorageModeLocal {
		t.Fatalf("expected local mode, got %s", cfg.Storage.Mode)
	}
	if cfg.Estimator.SubmitTimeout != 5*time.Second {
		t.Fatalf("expected 5s submit timeout, got %v", cfg.Estimator.SubmitTimeout)
	}
	if cfg.Migration.MaxAttempts != 3 {
		t.Fatalf("expected 3 migration attempts, got %d", cfg.Migration.MaxAttempts)
	}
	if cfg.Business.WhatsAppNumber != "919422115003" {
		t.Fatalf("unexpected whatsapp number %s", cfg.Business.WhatsAppNumber)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_MODE", " SHARED ")
	t.Setenv("SUBMIT_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg := Load()
	if cfg.Storage.Mode != StorageModeShared {
		t.Fatalf("expected shared mode, got %s", cfg.Storage.Mode)
	}
	if cfg.Estimator.SubmitTimeout != 2*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Estimator.SubmitTimeout)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.DynamoDB.Endpoint != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %s", cfg.DynamoDB.Endpoint)
	}
}

func TestLoad_UnknownModeFallsBackToLocal(t *testing.T) {
	t.Setenv("STORAGE_MODE", "cloud")
	if got := Load().Storage.Mode; got != StorageModeLocal {
		t.Fatalf("expected local, got %s", got)
	}
}
