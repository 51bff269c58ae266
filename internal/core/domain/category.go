package domain

// Category is the closed set of groupings a task can belong to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
)

// ParseCategory returns the Category matching value exactly.
func ParseCategory(value string) (Category, bool) {
	switch Category(value) {
	case CategoryWork, CategoryPersonal:
		return Category(value), true
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

func (c Category) String() string {
	return string(c)
}
