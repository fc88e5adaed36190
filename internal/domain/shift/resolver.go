package shift

import (
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

// Resolve returns the shift category id applicable to date, or ok=false when
// no assignment covers it.
//
// Precedence, highest first, evaluated independently per date:
//
//  1. SPECIFIC_PERIOD, when date is in range and the per-date map has a
//     non-empty entry. An in-range date with an empty or absent entry
//     contributes nothing and evaluation falls through; it does not
//     short-circuit to "no shift".
//  2. WEEKLY, when the day map has a non-empty entry for date's weekday.
//  3. DEFAULT, when a default category id is set.
//  4. Otherwise no shift.
//
// The order is a business rule, not an implementation accident. Weekends are
// not special-cased here: disabling Saturday/Sunday input is an editor
// concern, and a stored weekend entry resolves normally.
func (s AssignmentSet) Resolve(date time.Time) (string, bool) {
	if s.Specific != nil && s.Specific.ContainsDate(date) {
		if id := s.Specific.DateCategoryIDs[daterange.Format(daterange.Normalize(date))]; id != "" {
			return id, true
		}
	}

	if s.Weekly != nil {
		if id := s.Weekly.WeekdayCategoryIDs[WeekdayOf(date)]; id != "" {
			return id, true
		}
	}

	if s.Default != nil && s.Default.DefaultCategoryID != "" {
		return s.Default.DefaultCategoryID, true
	}

	return "", false
}

// ResolveCategory resolves the applicable category and checks it against the
// catalog. A resolved id missing from the catalog is reference-data breakage:
// the date degrades to "no shift" and the dangling id is reported so the
// caller can surface a data-integrity warning without aborting the render.
func (s AssignmentSet) ResolveCategory(date time.Time, catalog Catalog) (Category, bool, string) {
	id, ok := s.Resolve(date)
	if !ok {
		return Category{}, false, ""
	}
	cat, found := catalog.Lookup(id)
	if !found {
		return Category{}, false, id
	}
	return cat, true, ""
}
