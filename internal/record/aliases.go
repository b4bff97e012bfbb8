package record

import "slices"

// Aliases holds the ordered candidate field names for each semantic concept.
// Earlier names win over later ones.
type Aliases struct {
	Title     []string `yaml:"title,omitempty"     json:"title,omitempty"`
	Search    []string `yaml:"search,omitempty"    json:"search,omitempty"`
	Category  []string `yaml:"category,omitempty"  json:"category,omitempty"`
	Date      []string `yaml:"date,omitempty"      json:"date,omitempty"`
	Likes     []string `yaml:"likes,omitempty"     json:"likes,omitempty"`
	Comments  []string `yaml:"comments,omitempty"  json:"comments,omitempty"`
	Views     []string `yaml:"views,omitempty"     json:"views,omitempty"`
	Attendees []string `yaml:"attendees,omitempty" json:"attendees,omitempty"`
}

// DefaultAliases returns the alias table used by the community platform's
// collections. A new value is returned on each call.
func DefaultAliases() Aliases {
	return Aliases{
		Title:     []string{"titulo", "title", "nombre", "name"},
		Search:    []string{"titulo", "title", "nombre", "name", "descripcion", "description", "contenido", "content"},
		Category:  []string{"categoria", "category", "tipo", "type"},
		Date:      []string{"fecha", "date", "createdAt", "fechaCreacion"},
		Likes:     []string{"likes", "me_gusta"},
		Comments:  []string{"comentarios", "comments"},
		Views:     []string{"vistas", "views"},
		Attendees: []string{"asistentes", "attendees"},
	}
}

// Merge returns a copy of a where every concept listed in override replaces
// the corresponding list. Empty lists in override leave a unchanged.
func (a Aliases) Merge(override Aliases) Aliases {
	pick := func(base, over []string) []string {
		if len(over) > 0 {
			return slices.Clone(over)
		}
		return slices.Clone(base)
	}

	return Aliases{
		Title:     pick(a.Title, override.Title),
		Search:    pick(a.Search, override.Search),
		Category:  pick(a.Category, override.Category),
		Date:      pick(a.Date, override.Date),
		Likes:     pick(a.Likes, override.Likes),
		Comments:  pick(a.Comments, override.Comments),
		Views:     pick(a.Views, override.Views),
		Attendees: pick(a.Attendees, override.Attendees),
	}
}

// IsZero reports whether no concept has any alias.
func (a Aliases) IsZero() bool {
	return len(a.Title) == 0 && len(a.Search) == 0 && len(a.Category) == 0 &&
		len(a.Date) == 0 && len(a.Likes) == 0 && len(a.Comments) == 0 &&
		len(a.Views) == 0 && len(a.Attendees) == 0
}
