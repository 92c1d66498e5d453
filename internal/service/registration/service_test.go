package registration

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	applog "github.com/janisto/club-registration/internal/platform/logging"
	"github.com/janisto/club-registration/internal/platform/metrics"
	"github.com/janisto/club-registration/internal/service/catalog"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 15, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, variant Variant) (*Service, *MockStore) {
	t.Helper()
	store := NewMockStore()
	svc := NewService(store, catalog.Default(),
		WithVariant(variant),
		WithClock(fixedClock),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
	return svc, store
}

func adultSubmission(rfc string) Submission {
	return Submission{
		FirstName:      "Ana",
		FatherLastName: "Lopez",
		MotherLastName: "Garcia",
		BirthDate:      "2000-05-10",
		Gender:         "Femenino",
		Nationality:    "Mexicana",
		Club:           "Atlas",
		RFC:            rfc,
		Occupation:     "Engineer",
	}
}

func TestServiceDefaults(t *testing.T) {
	svc := NewService(NewMockStore(), catalog.Default())
	if svc.Variant() != VariantExport {
		t.Fatalf("expected export variant by default, got %s", svc.Variant())
	}
	if svc.Today().Location() != time.UTC {
		t.Fatal("expected UTC by default")
	}
}

func TestServiceTodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	svc := NewService(NewMockStore(), catalog.Default(),
		WithLocation(loc),
		WithClock(func() time.Time { return time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC) }),
	)
	today := svc.Today()
	if today.Day() != 20 || today.Hour() != 0 {
		t.Fatalf("expected midnight Oct 20 in UTC+10, got %v", today)
	}
}

func TestServiceCheckAge(t *testing.T) {
	svc, _ := newTestService(t, VariantBasic)

	check := svc.CheckAge(date(2008, time.October, 19))
	if check.Age != 18 || !check.ShowRFC {
		t.Fatalf("unexpected check %+v", check)
	}
	check = svc.CheckAge(date(2008, time.October, 20))
	if check.Age != 17 || check.ShowRFC {
		t.Fatalf("unexpected check %+v", check)
	}
}

func TestServicePreviewRFCUsesVariant(t *testing.T) {
	basic, _ := newTestService(t, VariantBasic)
	export, _ := newTestService(t, VariantExport)
	birth := date(2000, time.May, 10)

	if got := basic.PreviewRFC("Ana", "Lopez", "Garcia", birth); got != "LOGA000511xxx" {
		t.Fatalf("unexpected basic RFC %q", got)
	}
	if got := export.PreviewRFC("Ana", "Lopez", "Garcia", birth); got != "LOGA000511XXX" {
		t.Fatalf("unexpected export RFC %q", got)
	}
}

func TestServiceSubmitStoresRegistration(t *testing.T) {
	svc, store := newTestService(t, VariantExport)
	ctx := context.Background()

	reg, err := svc.Submit(ctx, "user-1", adultSubmission("LOGA000511XXX"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.ID != "user-1" || !reg.Adult || reg.Variant != VariantExport {
		t.Fatalf("unexpected registration %+v", reg)
	}
	if reg.ClubLogo != "assets/clubs/atlas.png" {
		t.Fatalf("unexpected logo %q", reg.ClubLogo)
	}
	if !reg.Profile.BirthDate.Equal(date(2000, time.May, 10)) {
		t.Fatalf("unexpected birth date %v", reg.Profile.BirthDate)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one stored registration, got %d", store.Len())
	}

	got, err := svc.Get(ctx, "user-1")
	if err != nil || got.Profile.FirstName != "Ana" {
		t.Fatalf("unexpected get result %+v, %v", got, err)
	}
}

func TestServiceSubmitTwiceConflicts(t *testing.T) {
	svc, _ := newTestService(t, VariantBasic)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "user-1", adultSubmission("LOGA000511xxx")); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	_, err := svc.Submit(ctx, "user-1", adultSubmission("LOGA000511xxx"))
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestServiceSubmitMismatchDoesNotStore(t *testing.T) {
	svc, store := newTestService(t, VariantBasic)

	_, err := svc.Submit(context.Background(), "user-1", adultSubmission("XXXX000511xxx"))
	var mismatch *RFCMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected RFCMismatchError, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("rejected submission must not be stored")
	}
}

func TestServiceSubmitMinorStoresWithoutRFCCheck(t *testing.T) {
	svc, _ := newTestService(t, VariantBasic)
	sub := adultSubmission("")
	sub.BirthDate = "2010-01-01"

	reg, err := svc.Submit(context.Background(), "user-1", sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Adult {
		t.Fatal("expected minor")
	}
}

func TestServiceDelete(t *testing.T) {
	svc, _ := newTestService(t, VariantBasic)
	ctx := context.Background()

	if err := svc.Delete(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, _ = svc.Submit(ctx, "user-1", adultSubmission("LOGA000511xxx"))
	if err := svc.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestServiceExport(t *testing.T) {
	svc, _ := newTestService(t, VariantExport)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := svc.Export(ctx, "user-1", &buf); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, _ = svc.Submit(ctx, "user-1", adultSubmission("LOGA000511XXX"))
	if err := svc.Export(ctx, "user-1", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF output")
	}
}

func TestServiceExportDisabledInBasicVariant(t *testing.T) {
	svc, _ := newTestService(t, VariantBasic)
	ctx := context.Background()
	_, _ = svc.Submit(ctx, "user-1", adultSubmission("LOGA000511xxx"))

	var buf bytes.Buffer
	if err := svc.Export(ctx, "user-1", &buf); !errors.Is(err, ErrExportDisabled) {
		t.Fatalf("expected ErrExportDisabled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written when export is disabled")
	}
}

func TestServiceExportLogsAuditEvent(t *testing.T) {
	svc, _ := newTestService(t, VariantExport)
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := applog.WithLogger(context.Background(), zap.New(core))

	_, _ = svc.Submit(ctx, "user-1", adultSubmission("LOGA000511XXX"))
	var buf bytes.Buffer
	if err := svc.Export(ctx, "user-1", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterField(zap.String("audit.action", "export")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one export audit entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["audit.result"] != applog.AuditSuccess || fields["audit.user_id"] != "user-1" {
		t.Fatalf("unexpected audit fields %v", fields)
	}
}
