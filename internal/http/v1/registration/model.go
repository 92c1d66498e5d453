package registration

import (
	"github.com/janisto/club-registration/internal/platform/timeutil"
)

// Registration represents the caller's accepted registration.
type Registration struct {
	ID             string        `json:"id"                 doc:"Owner user ID"                     example:"user-123"`
	FirstName      string        `json:"firstName"          doc:"First name"                        example:"Ana"`
	FatherLastName string        `json:"fatherLastName"     doc:"Father's last name"                example:"Lopez"`
	MotherLastName string        `json:"motherLastName"     doc:"Mother's last name"                example:"Garcia"`
	BirthDate      string        `json:"birthDate"          doc:"Birth date"                        example:"2000-05-10" format:"date"`
	Gender         string        `json:"gender"             doc:"Gender"                            example:"Femenino"`
	Nationality    string        `json:"nationality"        doc:"Nationality"                       example:"Mexicana"`
	Club           string        `json:"club"               doc:"Club"                              example:"Atlas"`
	ClubLogo       string        `json:"clubLogo,omitempty" doc:"Club logo reference (export only)" example:"assets/clubs/atlas.png"`
	RFC            string        `json:"rfc,omitempty"      doc:"Tax identifier as submitted"       example:"LOGA000511XXX"`
	Occupation     string        `json:"occupation"         doc:"Occupation"                        example:"Engineer"`
	Adult          bool          `json:"adult"              doc:"Whether the RFC was required"      example:"true"`
	PDFEnabled     bool          `json:"pdfEnabled"         doc:"Whether GET /registration/pdf is available" example:"true"`
	CreatedAt      timeutil.Time `json:"createdAt"          doc:"Submission timestamp"              example:"2024-01-15T10:30:00.000Z"`
}

// AgeCheck is the age gate result.
type AgeCheck struct {
	Age     int  `json:"age"     doc:"Completed years on today's date" example:"26"`
	ShowRFC bool `json:"showRfc" doc:"Whether an RFC is required"      example:"true"`
}

// RFCPreview is the RFC derived from names and birth date.
type RFCPreview struct {
	RFC    string `json:"rfc"    doc:"Derived RFC including placeholder homoclave" example:"LOGA000511XXX"`
	Prefix string `json:"prefix" doc:"Part compared on submit"                     example:"LOGA000511"`
}
