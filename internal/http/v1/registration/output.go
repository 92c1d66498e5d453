package registration

// AgeCheckOutput for POST /registration/age-check
type AgeCheckOutput struct {
	Body AgeCheck
}

// RFCPreviewOutput for POST /registration/rfc
type RFCPreviewOutput struct {
	Body RFCPreview
}

// RegistrationCreateOutput for POST /registration (201 Created)
type RegistrationCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created registration"`
	Body     Registration
}

// RegistrationGetOutput for GET /registration
type RegistrationGetOutput struct {
	Body Registration
}

// RegistrationExportOutput for GET /registration/pdf
type RegistrationExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
