// Package catalog holds the fixed option lists offered by the registration form.
package catalog

import "slices"

// List identifies one of the option lists.
type List string

const (
	Nationalities List = "nationalities"
	Genders       List = "genders"
	Clubs         List = "clubs"
)

// Club is a selectable club and the reference to its logo image.
type Club struct {
	Name string
	Logo string
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	nationalities []string
	genders       []string
	clubs         []Club
}

// New builds a catalog from the given lists. The slices are copied.
func New(nationalities, genders []string, clubs []Club) *Catalog {
	return &Catalog{
		nationalities: slices.Clone(nationalities),
		genders:       slices.Clone(genders),
		clubs:         slices.Clone(clubs),
	}
}

// Default returns the catalog shipped with the service.
func Default() *Catalog {
	return New(defaultNationalities, defaultGenders, defaultClubs)
}

// Names returns the display names of a list in catalog order. Unknown lists
// yield nil.
func (c *Catalog) Names(list List) []string {
	switch list {
	case Nationalities:
		return slices.Clone(c.nationalities)
	case Genders:
		return slices.Clone(c.genders)
	case Clubs:
		names := make([]string, len(c.clubs))
		for i, club := range c.clubs {
			names[i] = club.Name
		}
		return names
	default:
		return nil
	}
}

// Clubs returns the clubs with their logos in catalog order.
func (c *Catalog) Clubs() []Club {
	return slices.Clone(c.clubs)
}

// Contains reports whether name is an entry of list. Matching is exact.
func (c *Catalog) Contains(list List, name string) bool {
	if list == Clubs {
		_, ok := c.club(name)
		return ok
	}
	return slices.Contains(c.Names(list), name)
}

// ClubLogo returns the logo reference of the named club, or "" when the club
// is unknown.
func (c *Catalog) ClubLogo(name string) string {
	club, _ := c.club(name)
	return club.Logo
}

func (c *Catalog) club(name string) (Club, bool) {
	i := slices.IndexFunc(c.clubs, func(club Club) bool { return club.Name == name })
	if i < 0 {
		return Club{}, false
	}
	return c.clubs[i], true
}
