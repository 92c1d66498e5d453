package registration

import (
	"context"
	"errors"
	"io"
	"time"

	applog "github.com/janisto/club-registration/internal/platform/logging"
	"github.com/janisto/club-registration/internal/platform/metrics"
	"github.com/janisto/club-registration/internal/service/catalog"
	"github.com/janisto/club-registration/internal/service/document"
)

// Registration is an accepted submission stored for one user.
type Registration struct {
	ID        string
	Profile   Profile
	Adult     bool
	Variant   Variant
	ClubLogo  string
	CreatedAt time.Time
}

// CreateParams for storing an accepted submission.
type CreateParams struct {
	Profile  Profile
	Adult    bool
	Variant  Variant
	ClubLogo string
}

// Store persists one registration per user.
type Store interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Registration, error)
	Get(ctx context.Context, userID string) (*Registration, error)
	Delete(ctx context.Context, userID string) error
}

// Submission carries raw form values as received from a client.
type Submission struct {
	FirstName      string
	FatherLastName string
	MotherLastName string
	BirthDate      string
	Gender         string
	Nationality    string
	Club           string
	RFC            string
	Occupation     string
}

func (s Submission) fields() map[string]string {
	return map[string]string{
		FieldFirstName:      s.FirstName,
		FieldFatherLastName: s.FatherLastName,
		FieldMotherLastName: s.MotherLastName,
		FieldBirthDate:      s.BirthDate,
		FieldGender:         s.Gender,
		FieldNationality:    s.Nationality,
		FieldClub:           s.Club,
		FieldRFC:            s.RFC,
		FieldOccupation:     s.Occupation,
	}
}

// AgeCheck is the age gate result for a birth date.
type AgeCheck struct {
	Age     int
	ShowRFC bool
}

// Service runs the registration form for HTTP clients and persists accepted
// submissions.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	variant Variant
	loc     *time.Location
	now     func() time.Time
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithVariant sets the registration variant. Default is VariantExport.
func WithVariant(v Variant) Option { return func(s *Service) { s.variant = v } }

// WithLocation sets the location in which "today" is evaluated. Default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithMetrics records submissions, age checks and exports.
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// NewService creates a Service backed by store.
func NewService(store Store, cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: cat,
		variant: VariantExport,
		loc:     time.UTC,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Variant returns the configured variant.
func (s *Service) Variant() Variant { return s.variant }

// Catalog returns the option lists used for validation.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Location returns the location dates are evaluated in.
func (s *Service) Location() *time.Location { return s.loc }

// Today returns the current calendar date in the configured location.
func (s *Service) Today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// CheckAge evaluates the age gate for a birth date.
func (s *Service) CheckAge(birthDate time.Time) AgeCheck {
	age := Age(birthDate, s.Today())
	check := AgeCheck{Age: age, ShowRFC: age >= AdultAge}
	s.metrics.IncAgeCheck(check.ShowRFC)
	return check
}

// PreviewRFC derives the RFC a submission with these values is expected to carry.
func (s *Service) PreviewRFC(firstName, fatherLastName, motherLastName string, birthDate time.Time) string {
	return DeriveRFC(firstName, fatherLastName, motherLastName, birthDate, s.variant)
}

// NewForm starts a form evaluated against today.
func (s *Service) NewForm() *Form {
	return NewForm(s.variant, s.Today(), s.loc)
}

// Submit runs the form for sub and stores the accepted registration for userID.
func (s *Service) Submit(ctx context.Context, userID string, sub Submission) (*Registration, error) {
	form := s.NewForm()
	for field, value := range sub.fields() {
		form.SetField(field, value)
	}

	out, err := form.Submit(s.catalog)
	if err != nil {
		var mismatch *RFCMismatchError
		if errors.As(err, &mismatch) {
			s.metrics.IncSubmission(metrics.ResultRFCMismatch)
		} else {
			s.metrics.IncSubmission(metrics.ResultInvalid)
		}
		return nil, err
	}

	start := time.Now()
	reg, err := s.store.Create(ctx, userID, CreateParams{
		Profile:  *out.Profile,
		Adult:    form.ShowRFC(),
		Variant:  s.variant,
		ClubLogo: out.ClubLogo,
	})
	s.metrics.ObserveStore("create", time.Since(start))
	if err != nil {
		return nil, err
	}
	s.metrics.IncSubmission(metrics.ResultSubmitted)
	return reg, nil
}

// Get returns the registration of userID.
func (s *Service) Get(ctx context.Context, userID string) (*Registration, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveStore("get", time.Since(start)) }()
	return s.store.Get(ctx, userID)
}

// Delete removes the registration of userID.
func (s *Service) Delete(ctx context.Context, userID string) error {
	start := time.Now()
	defer func() { s.metrics.ObserveStore("delete", time.Since(start)) }()
	return s.store.Delete(ctx, userID)
}

// Export writes the PDF summary of userID's registration to w. It fails with
// ErrExportDisabled unless the service runs the export variant.
func (s *Service) Export(ctx context.Context, userID string, w io.Writer) error {
	if !s.variant.PDFEnabled() {
		return ErrExportDisabled
	}
	reg, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	p := reg.Profile
	err = document.Render(w, document.Summary{
		FirstName:      p.FirstName,
		FatherLastName: p.FatherLastName,
		MotherLastName: p.MotherLastName,
		BirthDate:      p.BirthDate,
		Gender:         p.Gender,
		Nationality:    p.Nationality,
		Club:           p.Club,
		RFC:            p.RFC,
		Occupation:     p.Occupation,
		Adult:          reg.Adult,
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "export", userID, "registration", userID, applog.AuditFailure,
			map[string]any{"error": "render_error"})
		return err
	}
	s.metrics.IncPDFExport()
	applog.LogAuditEvent(ctx, "export", userID, "registration", userID, applog.AuditSuccess, nil)
	return nil
}
