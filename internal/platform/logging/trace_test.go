package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		header  string
		ok      bool
		sampled bool
	}{
		{"00-" + sampleTraceID + "-00f067aa0ba902b7-01", true, true},
		{"00-" + sampleTraceID + "-00f067aa0ba902b7-00", true, false},
		{"00-" + sampleTraceID + "-00f067aa0ba902b7-03", true, true},
		{"00-" + sampleTraceID + "-00f067aa0ba902b7", false, false},
		{"00-short-00f067aa0ba902b7-01", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		tc, ok := parseTraceparent(tt.header)
		if ok != tt.ok || tc.sampled != tt.sampled {
			t.Fatalf("parseTraceparent(%q) = %+v, %v", tt.header, tc, ok)
		}
		if ok && (tc.traceID != sampleTraceID || tc.spanID != "00f067aa0ba902b7") {
			t.Fatalf("unexpected ids %+v", tc)
		}
	}
}

func logOnce(t *testing.T, logger *zap.Logger, logs *observer.ObservedLogs) map[string]any {
	t.Helper()
	logger.Info("probe")
	entries := logs.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	return entries[0].ContextMap()
}

func TestRequestLoggerAddsCloudTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	header := "00-" + sampleTraceID + "-00f067aa0ba902b7-01"

	logger, correlation := requestLogger(zap.New(core), header, "club-project", "req-1")
	want := "projects/club-project/traces/" + sampleTraceID
	if correlation != want {
		t.Fatalf("expected correlation %s, got %s", want, correlation)
	}

	fields := logOnce(t, logger, logs)
	if fields["logging.googleapis.com/trace"] != want {
		t.Fatalf("unexpected trace field %v", fields)
	}
	if fields["logging.googleapis.com/trace_sampled"] != true {
		t.Fatalf("expected sampled trace, got %v", fields)
	}
	if fields["requestId"] != "req-1" {
		t.Fatalf("expected requestId field, got %v", fields)
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	header := "00-" + sampleTraceID + "-00f067aa0ba902b7-01"

	// Without a project the trace header cannot be turned into a resource name.
	logger, correlation := requestLogger(zap.New(core), header, "", "req-2")
	if correlation != "req-2" {
		t.Fatalf("expected request ID correlation, got %s", correlation)
	}
	fields := logOnce(t, logger, logs)
	if _, ok := fields["logging.googleapis.com/trace"]; ok {
		t.Fatalf("unexpected trace field %v", fields)
	}
}

func TestRequestLoggerWithoutFields(t *testing.T) {
	base := zap.NewNop()
	if logger, correlation := requestLogger(base, "", "", ""); logger != base || correlation != "" {
		t.Fatal("expected base logger and empty correlation")
	}
	if logger, _ := requestLogger(nil, "", "", ""); logger == nil {
		t.Fatal("expected nop logger for nil base")
	}
}

func TestLookupProjectIDPriority(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "gcp-project")
	t.Setenv("GCLOUD_PROJECT", "gcloud-project")
	if got := lookupProjectID(); got != "gcp-project" {
		t.Fatalf("expected gcp-project, got %s", got)
	}

	t.Setenv("FIREBASE_PROJECT_ID", "firebase-project")
	if got := lookupProjectID(); got != "firebase-project" {
		t.Fatalf("expected firebase-project, got %s", got)
	}
}
