package shift

import (
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

// Category is a named work-time template. Immutable reference data; many
// assignments may reference one category.
type Category struct {
	ID            string
	Name          string
	WorkStartTime string // HH:mm or HH:mm:ss
	WorkEndTime   string // HH:mm or HH:mm:ss
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Catalog indexes categories by id for O(1) reference lookups during
// resolution.
type Catalog map[string]Category

func NewCatalog(categories []Category) Catalog {
	c := make(Catalog, len(categories))
	for _, cat := range categories {
		c[cat.ID] = cat
	}
	return c
}

func (c Catalog) Lookup(id string) (Category, bool) {
	cat, ok := c[id]
	return cat, ok
}

type Type string

const (
	TypeDefault        Type = "DEFAULT"
	TypeWeekly         Type = "WEEKLY"
	TypeSpecificPeriod Type = "SPECIFIC_PERIOD"
)

var TypeValues = []string{
	string(TypeDefault),
	string(TypeWeekly),
	string(TypeSpecificPeriod),
}

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var WeekdayValues = []string{
	string(Monday),
	string(Tuesday),
	string(Wednesday),
	string(Thursday),
	string(Friday),
	string(Saturday),
	string(Sunday),
}

var weekdayByGoDay = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the closed weekday name for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return weekdayByGoDay[t.Weekday()]
}

// Assignment is one staff member's rule for mapping calendar dates to shift
// categories. Exactly one of the kind-specific field sets is meaningful,
// selected by Type. The persistence layer guarantees at most one assignment
// per (staff, type); consumers must still tolerate zero-or-one per kind.
type Assignment struct {
	ID           string
	StaffID      string
	DepartmentID string
	RoleID       string
	Type         Type

	// DEFAULT
	DefaultCategoryID string

	// WEEKLY: absent weekday means no shift that weekday.
	WeekdayCategoryIDs map[Weekday]string

	// SPECIFIC_PERIOD: inclusive range, per-date overrides keyed by canonical
	// ISO date. A date inside the range with no entry (or an empty id) means
	// no category assigned that day.
	FromDate        time.Time
	ToDate          time.Time
	DateCategoryIDs map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainsDate reports whether date falls within the assignment's inclusive
// SPECIFIC_PERIOD range. Always false for other kinds.
func (a *Assignment) ContainsDate(date time.Time) bool {
	if a.Type != TypeSpecificPeriod {
		return false
	}
	d := daterange.Normalize(date)
	return !d.Before(daterange.Normalize(a.FromDate)) && !d.After(daterange.Normalize(a.ToDate))
}

// AssignmentSet holds one staff member's assignments, at most one per kind.
type AssignmentSet struct {
	Default  *Assignment
	Weekly   *Assignment
	Specific *Assignment
}

// NewAssignmentSet slots a fetched assignment list into the per-kind set.
// Duplicate kinds should not occur; if the snapshot carries one anyway the
// later row wins rather than failing the whole resolution pass.
func NewAssignmentSet(assignments []Assignment) AssignmentSet {
	var set AssignmentSet
	for i := range assignments {
		a := &assignments[i]
		switch a.Type {
		case TypeDefault:
			set.Default = a
		case TypeWeekly:
			set.Weekly = a
		case TypeSpecificPeriod:
			set.Specific = a
		}
	}
	return set
}
