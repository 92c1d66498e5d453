package registration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/club-registration/internal/platform/auth"
	applog "github.com/janisto/club-registration/internal/platform/logging"
	"github.com/janisto/club-registration/internal/platform/timeutil"
	"github.com/janisto/club-registration/internal/service/document"
	regsvc "github.com/janisto/club-registration/internal/service/registration"
)

// Service is the registration behavior the handlers depend on.
type Service interface {
	Location() *time.Location
	CheckAge(birthDate time.Time) regsvc.AgeCheck
	PreviewRFC(firstName, fatherLastName, motherLastName string, birthDate time.Time) string
	Submit(ctx context.Context, userID string, sub regsvc.Submission) (*regsvc.Registration, error)
	Get(ctx context.Context, userID string) (*regsvc.Registration, error)
	Delete(ctx context.Context, userID string) error
	Export(ctx context.Context, userID string, w io.Writer) error
}

// Register registers registration endpoints.
func Register(api huma.API, svc Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "check-age",
		Method:      http.MethodPost,
		Path:        "/registration/age-check",
		Summary:     "Evaluate the age gate",
		Description: "Returns the age on today's date and whether an RFC is required (18 or older).",
		Tags:        []string{"Registration"},
	}, func(_ context.Context, input *AgeCheckInput) (*AgeCheckOutput, error) {
		birth, err := timeutil.ParseDate(input.Body.BirthDate, svc.Location())
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid birth date", dateDetail(input.Body.BirthDate))
		}
		check := svc.CheckAge(birth)
		return &AgeCheckOutput{Body: AgeCheck{Age: check.Age, ShowRFC: check.ShowRFC}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "preview-rfc",
		Method:      http.MethodPost,
		Path:        "/registration/rfc",
		Summary:     "Derive the expected RFC",
		Description: "Derives the RFC a submission with these names and birth date must match, ignoring the last three characters.",
		Tags:        []string{"Registration"},
	}, func(_ context.Context, input *RFCPreviewInput) (*RFCPreviewOutput, error) {
		birth, err := timeutil.ParseDate(input.Body.BirthDate, svc.Location())
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid birth date", dateDetail(input.Body.BirthDate))
		}
		rfc := svc.PreviewRFC(input.Body.FirstName, input.Body.FatherLastName, input.Body.MotherLastName, birth)
		return &RFCPreviewOutput{Body: RFCPreview{RFC: rfc, Prefix: regsvc.StripSuffix(rfc)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-registration",
		Method:        http.MethodPost,
		Path:          "/registration",
		Summary:       "Submit a registration",
		Description:   "Validates and stores the authenticated user's registration. Adults must provide an RFC matching the derived one.",
		Tags:          []string{"Registration"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.BearerSecurity(),
	}, func(ctx context.Context, input *RegistrationCreateInput) (*RegistrationCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		b := input.Body
		reg, err := svc.Submit(ctx, user.UID, regsvc.Submission{
			FirstName:      b.FirstName,
			FatherLastName: b.FatherLastName,
			MotherLastName: b.MotherLastName,
			BirthDate:      b.BirthDate,
			Gender:         b.Gender,
			Nationality:    b.Nationality,
			Club:           b.Club,
			RFC:            b.RFC,
			Occupation:     b.Occupation,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &RegistrationCreateOutput{
			Location: prefix + "/registration",
			Body:     toHTTPRegistration(reg),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-registration",
		Method:      http.MethodGet,
		Path:        "/registration",
		Summary:     "Get current user's registration",
		Description: "Retrieves the registration of the authenticated user.",
		Tags:        []string{"Registration"},
		Security:    auth.BearerSecurity(),
	}, func(ctx context.Context, _ *RegistrationGetInput) (*RegistrationGetOutput, error) {
		user := auth.UserFromContext(ctx)

		reg, err := svc.Get(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &RegistrationGetOutput{Body: toHTTPRegistration(reg)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-registration",
		Method:        http.MethodDelete,
		Path:          "/registration",
		Summary:       "Delete current user's registration",
		Description:   "Permanently deletes the authenticated user's registration so the form can be submitted again.",
		Tags:          []string{"Registration"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity(),
	}, func(ctx context.Context, _ *RegistrationDeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		if err := svc.Delete(ctx, user.UID); err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "export-registration",
		Method:      http.MethodGet,
		Path:        "/registration/pdf",
		Summary:     "Download the registration as PDF",
		Description: "Renders a one-page summary of the authenticated user's registration. Only available in the export variant.",
		Tags:        []string{"Registration"},
		Security:    auth.BearerSecurity(),
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF summary",
				Content: map[string]*huma.MediaType{
					document.ContentType: {Schema: &huma.Schema{Type: huma.TypeString, Format: "binary"}},
				},
			},
		},
	}, func(ctx context.Context, _ *RegistrationExportInput) (*RegistrationExportOutput, error) {
		user := auth.UserFromContext(ctx)

		var buf bytes.Buffer
		if err := svc.Export(ctx, user.UID, &buf); err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &RegistrationExportOutput{
			ContentType:        document.ContentType,
			ContentDisposition: `attachment; filename="` + document.Filename + `"`,
			Body:               buf.Bytes(),
		}, nil
	})
}

func dateDetail(value string) *huma.ErrorDetail {
	return &huma.ErrorDetail{
		Location: "body.birthDate",
		Message:  "expected date in YYYY-MM-DD format",
		Value:    value,
	}
}

func mapServiceError(ctx context.Context, err error) error {
	var verr *regsvc.ValidationError
	var mismatch *regsvc.RFCMismatchError
	switch {
	case errors.As(err, &verr):
		details := make([]error, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = &huma.ErrorDetail{Location: "body." + f.Field, Message: f.Message}
		}
		applog.LogInfo(ctx, "registration rejected", zap.String("reason", "invalid"),
			zap.Int("fields", len(details)))
		return huma.Error422UnprocessableEntity("validation failed", details...)
	case errors.As(err, &mismatch):
		applog.LogInfo(ctx, "registration rejected", zap.String("reason", "rfc_mismatch"))
		return huma.Error422UnprocessableEntity(mismatch.Error(), &huma.ErrorDetail{
			Location: "body.rfc",
			Message:  "does not match the RFC derived from names and birth date",
			Value:    mismatch.Expected,
		})
	case errors.Is(err, regsvc.ErrNotFound):
		return huma.Error404NotFound("registration not found")
	case errors.Is(err, regsvc.ErrAlreadyExists):
		return huma.Error409Conflict("registration already exists")
	case errors.Is(err, regsvc.ErrExportDisabled):
		return huma.Error404NotFound("pdf export is not enabled")
	default:
		applog.LogError(ctx, "registration service error", err)
		if id := applog.TraceIDFromContext(ctx); id != nil {
			return huma.Error500InternalServerError("internal error, reference " + *id)
		}
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPRegistration(r *regsvc.Registration) Registration {
	p := r.Profile
	return Registration{
		ID:             r.ID,
		FirstName:      p.FirstName,
		FatherLastName: p.FatherLastName,
		MotherLastName: p.MotherLastName,
		BirthDate:      p.BirthDate.Format(timeutil.DateLayout),
		Gender:         p.Gender,
		Nationality:    p.Nationality,
		Club:           p.Club,
		ClubLogo:       r.ClubLogo,
		RFC:            p.RFC,
		Occupation:     p.Occupation,
		Adult:          r.Adult,
		PDFEnabled:     r.Variant.PDFEnabled(),
		CreatedAt:      timeutil.Time{Time: r.CreatedAt},
	}
}
