package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func recordAudit(t *testing.T, fn func(ctx context.Context)) map[string]zap.Field {
	t.Helper()

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))
	fn(ctx)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "Audit event" {
		t.Fatalf("expected message 'Audit event', got %q", entries[0].Message)
	}
	fields := map[string]zap.Field{}
	for _, f := range entries[0].Context {
		fields[f.Key] = f
	}
	return fields
}

func TestLogAuditEvent(t *testing.T) {
	fields := recordAudit(t, func(ctx context.Context) {
		LogAuditEvent(ctx, "create", "user-123", "registration", "user-123", AuditSuccess, nil)
	})

	want := map[string]string{
		"audit.action":        "create",
		"audit.user_id":       "user-123",
		"audit.resource_type": "registration",
		"audit.resource_id":   "user-123",
		"audit.result":        "success",
	}
	for key, value := range want {
		if got := fields[key].String; got != value {
			t.Errorf("expected %s %q, got %q", key, value, got)
		}
	}
}

func TestLogAuditEventFailureDetails(t *testing.T) {
	fields := recordAudit(t, func(ctx context.Context) {
		LogAuditEvent(ctx, "delete", "user-789", "registration", "user-789", AuditFailure,
			map[string]any{"error": "not_found"})
	})

	if got := fields["audit.result"].String; got != AuditFailure {
		t.Errorf("expected audit.result failure, got %q", got)
	}
	details, ok := fields["audit.details"].Interface.(map[string]any)
	if !ok {
		t.Fatalf("expected audit.details map, got %T", fields["audit.details"].Interface)
	}
	if details["error"] != "not_found" {
		t.Errorf("expected error category not_found, got %v", details["error"])
	}
}
