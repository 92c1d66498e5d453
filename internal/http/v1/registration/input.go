package registration

// AgeCheckInput for POST /registration/age-check
type AgeCheckInput struct {
	Body struct {
		BirthDate string `json:"birthDate" format:"date" doc:"Birth date (YYYY-MM-DD)" example:"2000-05-10"`
	}
}

// RFCPreviewInput for POST /registration/rfc
type RFCPreviewInput struct {
	Body struct {
		FirstName      string `json:"firstName"      maxLength:"100" doc:"First name"         example:"Ana"`
		FatherLastName string `json:"fatherLastName" maxLength:"100" doc:"Father's last name" example:"Lopez"`
		MotherLastName string `json:"motherLastName" maxLength:"100" doc:"Mother's last name" example:"Garcia"`
		BirthDate      string `json:"birthDate"      format:"date"   doc:"Birth date"         example:"2000-05-10"`
	}
}

// RegistrationCreateInput for POST /registration. Empty values are reported per
// field by the form validation rather than rejected by the schema.
type RegistrationCreateInput struct {
	Body struct {
		FirstName      string `json:"firstName"      maxLength:"100" doc:"First name"                            example:"Ana"`
		FatherLastName string `json:"fatherLastName" maxLength:"100" doc:"Father's last name"                    example:"Lopez"`
		MotherLastName string `json:"motherLastName" maxLength:"100" doc:"Mother's last name"                    example:"Garcia"`
		BirthDate      string `json:"birthDate"      maxLength:"10"  doc:"Birth date (YYYY-MM-DD)"               example:"2000-05-10"`
		Gender         string `json:"gender"         maxLength:"100" doc:"One of GET /genders"                   example:"Femenino"`
		Nationality    string `json:"nationality"    maxLength:"100" doc:"One of GET /nationalities"             example:"Mexicana"`
		Club           string `json:"club"           maxLength:"100" doc:"One of GET /clubs"                     example:"Atlas"`
		RFC            string `json:"rfc,omitempty"  maxLength:"20"  doc:"Tax identifier, required for adults"   example:"LOGA000511XXX"`
		Occupation     string `json:"occupation"     maxLength:"100" doc:"Occupation"                            example:"Engineer"`
	}
}

// RegistrationGetInput for GET /registration (no body needed)
type RegistrationGetInput struct{}

// RegistrationDeleteInput for DELETE /registration (no body needed)
type RegistrationDeleteInput struct{}

// RegistrationExportInput for GET /registration/pdf (no body needed)
type RegistrationExportInput struct{}
