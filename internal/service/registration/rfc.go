package registration

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Variant selects the RFC suffix and whether accepted registrations can be
// exported as PDF.
type Variant string

const (
	VariantBasic  Variant = "basic"
	VariantExport Variant = "export"
)

// SuffixLen is the length of the homoclave placeholder ignored when matching.
const SuffixLen = 3

const vowels = "AEIOUaeiou"

// ParseVariant accepts "basic" or "export", case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBasic, VariantExport:
		return v, nil
	default:
		return "", fmt.Errorf("unknown registration variant %q", s)
	}
}

// Suffix is the placeholder homoclave appended to derived RFCs.
func (v Variant) Suffix() string {
	if v == VariantExport {
		return "XXX"
	}
	return "xxx"
}

// PDFEnabled reports whether accepted registrations can be exported.
func (v Variant) PDFEnabled() bool {
	return v == VariantExport
}

// DeriveRFC builds the simplified RFC for a person:
//
//	father[0] + first vowel of father + mother[0] + first[0]  (upper-cased)
//	YY + MM + (DD+1)                                          (two digits each)
//	suffix                                                    (per variant)
//
// The day is deliberately one past the birth day. Empty names contribute nothing.
func DeriveRFC(firstName, fatherLastName, motherLastName string, birthDate time.Time, variant Variant) string {
	var letters strings.Builder
	letters.WriteString(firstLetter(fatherLastName))
	if i := strings.IndexAny(fatherLastName, vowels); i >= 0 {
		letters.WriteByte(fatherLastName[i])
	}
	letters.WriteString(firstLetter(motherLastName))
	letters.WriteString(firstLetter(firstName))

	y, m, d := birthDate.Date()
	datePart := fmt.Sprintf("%02d%02d%02d", y%100, int(m), d+1)

	return strings.ToUpper(letters.String()) + datePart + variant.Suffix()
}

// StripSuffix removes the trailing homoclave. Values shorter than the suffix
// become empty.
func StripSuffix(rfc string) string {
	n := utf8.RuneCountInString(rfc)
	if n < SuffixLen {
		return ""
	}
	runes := []rune(rfc)
	return string(runes[:n-SuffixLen])
}

// MatchRFC compares two RFCs ignoring their suffixes. The comparison is
// case-sensitive.
func MatchRFC(expected, provided string) bool {
	return StripSuffix(expected) == StripSuffix(provided)
}

func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
