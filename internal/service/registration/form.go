package registration

import (
	"errors"
	"strings"
	"time"

	"github.com/janisto/club-registration/internal/platform/timeutil"
	"github.com/janisto/club-registration/internal/service/catalog"
)

// Form field names, as used in requests and validation errors.
const (
	FieldFirstName      = "firstName"
	FieldFatherLastName = "fatherLastName"
	FieldMotherLastName = "motherLastName"
	FieldBirthDate      = "birthDate"
	FieldGender         = "gender"
	FieldNationality    = "nationality"
	FieldClub           = "club"
	FieldRFC            = "rfc"
	FieldOccupation     = "occupation"
)

// Profile is a validated submission.
type Profile struct {
	FirstName      string
	FatherLastName string
	MotherLastName string
	BirthDate      time.Time
	Gender         string
	Nationality    string
	Club           string
	RFC            string
	Occupation     string
}

// Outcome is the state of a form after a submit attempt.
type Outcome struct {
	Submitted   bool
	RFCError    string
	ExpectedRFC string
	PDFEnabled  bool
	ClubLogo    string
	Profile     *Profile
}

// Form holds raw field values for one submission and the derived age gate.
// It is not safe for concurrent use.
type Form struct {
	variant Variant
	today   time.Time
	loc     *time.Location

	values    map[string]string
	birthDate time.Time
	birthErr  error
	showRFC   bool

	submitted bool
	rfcError  string
}

// NewForm starts an empty form evaluated against today in loc (UTC when nil).
func NewForm(variant Variant, today time.Time, loc *time.Location) *Form {
	if loc == nil {
		loc = time.UTC
	}
	return &Form{
		variant:  variant,
		today:    today.In(loc),
		loc:      loc,
		values:   make(map[string]string),
		birthErr: errMissing,
	}
}

var (
	errMissing     = errors.New("is required")
	errInvalidDate = errors.New("must be a date in YYYY-MM-DD format")
)

// SetField stores a raw value. Setting the birth date re-evaluates the age gate.
func (f *Form) SetField(field, value string) {
	f.values[field] = value
	if field != FieldBirthDate {
		return
	}
	if strings.TrimSpace(value) == "" {
		f.birthDate, f.birthErr = time.Time{}, errMissing
		f.showRFC = false
		return
	}
	d, err := timeutil.ParseDate(strings.TrimSpace(value), f.loc)
	if err != nil {
		f.birthDate, f.birthErr = time.Time{}, errInvalidDate
		f.showRFC = false
		return
	}
	f.SetBirthDate(d)
}

// SetBirthDate sets an already parsed birth date and re-evaluates the age gate.
func (f *Form) SetBirthDate(d time.Time) {
	f.values[FieldBirthDate] = d.Format(timeutil.DateLayout)
	f.birthDate, f.birthErr = d, nil
	f.showRFC = IsAdult(d, f.today)
}

// ShowRFC reports whether the age gate currently requires an RFC.
func (f *Form) ShowRFC() bool { return f.showRFC }

// Submitted reports whether the last submit was accepted.
func (f *Form) Submitted() bool { return f.submitted }

// RFCError is the message of the last rejected submit, or "".
func (f *Form) RFCError() string { return f.rfcError }

// Validate checks required fields and list membership and returns the profile.
func (f *Form) Validate(cat *catalog.Catalog) (*Profile, error) {
	verr := &ValidationError{}
	get := func(field string) string {
		v := strings.TrimSpace(f.values[field])
		if v == "" {
			verr.add(field, "is required")
		}
		return v
	}

	p := &Profile{
		FirstName:      get(FieldFirstName),
		FatherLastName: get(FieldFatherLastName),
		MotherLastName: get(FieldMotherLastName),
	}
	if f.birthErr != nil {
		verr.add(FieldBirthDate, f.birthErr.Error())
	} else {
		p.BirthDate = f.birthDate
	}
	p.Gender = get(FieldGender)
	p.Nationality = get(FieldNationality)
	p.Club = get(FieldClub)
	p.RFC = f.values[FieldRFC]
	p.Occupation = get(FieldOccupation)

	for _, m := range []struct {
		field string
		list  catalog.List
		value string
	}{
		{FieldGender, catalog.Genders, p.Gender},
		{FieldNationality, catalog.Nationalities, p.Nationality},
		{FieldClub, catalog.Clubs, p.Club},
	} {
		if m.value != "" && !cat.Contains(m.list, m.value) {
			verr.add(m.field, "is not a valid option")
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return p, nil
}

// Submit validates the form and, when the age gate is active, checks the
// provided RFC against the derived one. A *ValidationError or *RFCMismatchError
// leaves the form unsubmitted.
func (f *Form) Submit(cat *catalog.Catalog) (Outcome, error) {
	p, err := f.Validate(cat)
	if err != nil {
		f.submitted = false
		return f.outcome(nil, ""), err
	}

	expected := DeriveRFC(p.FirstName, p.FatherLastName, p.MotherLastName, p.BirthDate, f.variant)
	if f.showRFC && !MatchRFC(expected, p.RFC) {
		mismatch := &RFCMismatchError{Expected: StripSuffix(expected)}
		f.submitted = false
		f.rfcError = mismatch.Error()
		return f.outcome(nil, expected), mismatch
	}

	f.rfcError = ""
	f.submitted = true
	out := f.outcome(p, expected)
	if f.variant.PDFEnabled() {
		out.PDFEnabled = true
		out.ClubLogo = cat.ClubLogo(p.Club)
	}
	return out, nil
}

func (f *Form) outcome(p *Profile, expected string) Outcome {
	return Outcome{
		Submitted:   f.submitted,
		RFCError:    f.rfcError,
		ExpectedRFC: expected,
		Profile:     p,
	}
}
