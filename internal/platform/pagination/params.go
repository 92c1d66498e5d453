package pagination

const defaultLimit = 20

// Params embeds into huma input structs for paginated listings.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from a previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                            default:"20" minimum:"1" maximum:"100"`
}

// DefaultLimit returns the limit, falling back to 20 when unset.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return defaultLimit
	}
	return p.Limit
}
