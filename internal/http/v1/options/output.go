package options

// Option is a selectable value of the registration form.
type Option struct {
	Name string `json:"name" doc:"Display name, submitted as-is" example:"Mexicana"`
}

// Club is a selectable club with its logo reference.
type Club struct {
	Name string `json:"name"           doc:"Display name, submitted as-is" example:"Atlas"`
	Logo string `json:"logo,omitempty" doc:"Logo image reference"          example:"assets/clubs/atlas.png"`
}

// OptionList is a page of plain options.
type OptionList struct {
	Items []Option `json:"items" doc:"Options in display order"`
	Total int      `json:"total" doc:"Total number of options" example:"18"`
}

// ClubList is a page of clubs.
type ClubList struct {
	Items []Club `json:"items" doc:"Clubs in display order"`
	Total int    `json:"total" doc:"Total number of clubs" example:"11"`
}

// OptionListOutput wraps a page of options with its pagination links.
type OptionListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body OptionList
}

// ClubListOutput wraps a page of clubs with its pagination links.
type ClubListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ClubList
}
