// Package document renders the one-page PDF summary of a registration.
package document

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Filename is the name offered to clients when downloading the summary.
const Filename = "profile.pdf"

// ContentType of rendered documents.
const ContentType = "application/pdf"

const (
	marginMM    = 10.0
	linePitchMM = 10.0
	fontFamily  = "Helvetica"
	fontSizePt  = 12.0
	titleSizePt = 16.0
	title       = "Club registration"
)

// Summary is the data printed on the page.
type Summary struct {
	FirstName      string
	FatherLastName string
	MotherLastName string
	BirthDate      time.Time
	Gender         string
	Nationality    string
	Club           string
	RFC            string
	Occupation     string
	Adult          bool // prints the RFC line
}

// Lines returns the text lines of the summary in page order, without the title.
func (s Summary) Lines() []string {
	lines := []string{
		"First name: " + s.FirstName,
		"Father's last name: " + s.FatherLastName,
		"Mother's last name: " + s.MotherLastName,
		"Birth date: " + s.BirthDate.Format(time.DateOnly),
		"Gender: " + s.Gender,
		"Nationality: " + s.Nationality,
		"Club: " + s.Club,
		"Occupation: " + s.Occupation,
	}
	if s.Adult {
		lines = append(lines, "RFC: "+s.RFC)
	}
	return lines
}

// Render writes an A4 portrait PDF with one line per field at fixed positions.
func Render(w io.Writer, s Summary) error {
	return render(w, s, true)
}

func render(w io.Writer, s Summary, compress bool) error {
	pdf := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, fpdf.PageSizeA4, "")
	pdf.SetCompression(compress)
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(false, marginMM)
	pdf.SetTitle(title, true)
	pdf.SetCreator("club-registration", true)
	pdf.AddPage()

	// Core fonts are cp1252; names with accents need translating from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := marginMM + linePitchMM
	pdf.SetFont(fontFamily, "B", titleSizePt)
	pdf.Text(marginMM, y, tr(title))

	pdf.SetFont(fontFamily, "", fontSizePt)
	for _, line := range s.Lines() {
		y += linePitchMM
		pdf.Text(marginMM, y, tr(line))
	}

	return pdf.Output(w)
}
