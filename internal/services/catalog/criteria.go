package catalog

// SentinelAll is the dropdown value that leaves a dimension
// unconstrained. An empty string means the same thing.
const SentinelAll = "All"

// Criteria is a value type describing one discovery query. Zero or
// sentinel values disable their dimension, so the zero Criteria
// matches every record of the selected role.
type Criteria struct {
	Role  string
	Query string

	Category    string
	Genders     []string
	Ethnicities []string
	Location    string
	AgeMin      int
	AgeMax      int

	MinHeightCM int
	MaxBustCM   int
	MaxWaistCM  int
	MaxHipsCM   int
	DressSize   string
	ShoeSizeEU  int
	EyeColor    string
	HairColor   string
	HairTexture string

	Vibes        []string
	MinFollowers int
	MaxPrice     int
	UnionStatus  string

	SortKey string
}

// DefaultCriteria returns the state the discovery page opens with:
// everything unconstrained, full adult age range, featured order.
func DefaultCriteria(ageMin, ageMax int) Criteria {
	return Criteria{
		AgeMin:  ageMin,
		AgeMax:  ageMax,
		SortKey: SortFeatured,
	}
}

// Reset clears every dimension except the role tab.
func (c Criteria) Reset(ageMin, ageMax int) Criteria {
	out := DefaultCriteria(ageMin, ageMax)
	out.Role = c.Role
	return out
}

func disabled(value string) bool {
	return value == "" || value == SentinelAll
}
