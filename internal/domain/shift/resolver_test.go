package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2024-06-03 is a Monday.
var (
	monday  = date(2024, 6, 3)
	tuesday = date(2024, 6, 4)
)

func defaultAssignment(categoryID string) *Assignment {
	return &Assignment{
		ID:                "as-default",
		StaffID:           "staff-1",
		Type:              TypeDefault,
		DefaultCategoryID: categoryID,
	}
}

func weeklyAssignment(days map[Weekday]string) *Assignment {
	return &Assignment{
		ID:                 "as-weekly",
		StaffID:            "staff-1",
		Type:               TypeWeekly,
		WeekdayCategoryIDs: days,
	}
}

func specificAssignment(from, to time.Time, dates map[string]string) *Assignment {
	return &Assignment{
		ID:              "as-specific",
		StaffID:         "staff-1",
		Type:            TypeSpecificPeriod,
		FromDate:        from,
		ToDate:          to,
		DateCategoryIDs: dates,
	}
}

func TestResolve_PrecedenceAllKindsPresent(t *testing.T) {
	set := AssignmentSet{
		Default:  defaultAssignment("cat-default"),
		Weekly:   weeklyAssignment(map[Weekday]string{Monday: "cat-weekly"}),
		Specific: specificAssignment(date(2024, 6, 1), date(2024, 6, 10), map[string]string{"2024-06-03": "cat-specific"}),
	}

	// Non-empty specific entry wins over weekly and default.
	id, ok := set.Resolve(monday)
	require.True(t, ok)
	assert.Equal(t, "cat-specific", id)
}

func TestResolve_EmptySpecificEntryFallsThrough(t *testing.T) {
	weekly := weeklyAssignment(map[Weekday]string{Monday: "cat-weekly"})

	cases := []struct {
		name  string
		dates map[string]string
	}{
		{"entry absent", map[string]string{}},
		{"entry empty", map[string]string{"2024-06-03": ""}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set := AssignmentSet{
				Default:  defaultAssignment("cat-default"),
				Weekly:   weekly,
				Specific: specificAssignment(date(2024, 6, 1), date(2024, 6, 10), c.dates),
			}

			// In range but unassigned: falls through to weekly, not "no shift".
			id, ok := set.Resolve(monday)
			require.True(t, ok)
			assert.Equal(t, "cat-weekly", id)
		})
	}
}

func TestResolve_FallsThroughToDefault(t *testing.T) {
	set := AssignmentSet{
		Default:  defaultAssignment("cat-default"),
		Weekly:   weeklyAssignment(map[Weekday]string{Monday: "cat-weekly"}),
		Specific: specificAssignment(date(2024, 6, 1), date(2024, 6, 10), map[string]string{}),
	}

	// Tuesday has no specific entry and no weekly entry.
	id, ok := set.Resolve(tuesday)
	require.True(t, ok)
	assert.Equal(t, "cat-default", id)
}

func TestResolve_SpecificOutOfRangeIgnored(t *testing.T) {
	set := AssignmentSet{
		Default:  defaultAssignment("cat-default"),
		Specific: specificAssignment(date(2024, 6, 10), date(2024, 6, 15), map[string]string{"2024-06-03": "cat-specific"}),
	}

	// The map entry exists but the date is outside [from, to].
	id, ok := set.Resolve(monday)
	require.True(t, ok)
	assert.Equal(t, "cat-default", id)
}

func TestResolve_WeeklyOnly(t *testing.T) {
	set := AssignmentSet{
		Weekly: weeklyAssignment(map[Weekday]string{Monday: "cat-a"}),
	}

	id, ok := set.Resolve(monday)
	require.True(t, ok)
	assert.Equal(t, "cat-a", id)

	_, ok = set.Resolve(tuesday)
	assert.False(t, ok)
}

func TestResolve_NoAssignments(t *testing.T) {
	var set AssignmentSet
	_, ok := set.Resolve(monday)
	assert.False(t, ok)
}

func TestResolve_WeekendEntriesResolveNormally(t *testing.T) {
	saturday := date(2024, 6, 8)
	set := AssignmentSet{
		Weekly: weeklyAssignment(map[Weekday]string{Saturday: "cat-weekend"}),
	}

	id, ok := set.Resolve(saturday)
	require.True(t, ok)
	assert.Equal(t, "cat-weekend", id)
}

func TestResolve_IgnoresTimeOfDay(t *testing.T) {
	set := AssignmentSet{
		Specific: specificAssignment(date(2024, 6, 1), date(2024, 6, 10), map[string]string{"2024-06-03": "cat-specific"}),
	}

	id, ok := set.Resolve(time.Date(2024, 6, 3, 18, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "cat-specific", id)
}

func TestResolveCategory_UnknownCategoryDegrades(t *testing.T) {
	catalog := NewCatalog([]Category{
		{ID: "cat-known", Name: "Morning", WorkStartTime: "08:00", WorkEndTime: "16:00"},
	})
	set := AssignmentSet{Default: defaultAssignment("cat-missing")}

	// The referenced id is not in the catalog: treat as no shift, report the
	// dangling id, never fail.
	_, ok, dangling := set.ResolveCategory(monday, catalog)
	assert.False(t, ok)
	assert.Equal(t, "cat-missing", dangling)

	set = AssignmentSet{Default: defaultAssignment("cat-known")}
	cat, ok, dangling := set.ResolveCategory(monday, catalog)
	require.True(t, ok)
	assert.Empty(t, dangling)
	assert.Equal(t, "Morning", cat.Name)
}

func TestNewAssignmentSet(t *testing.T) {
	list := []Assignment{
		{ID: "a1", Type: TypeDefault, DefaultCategoryID: "cat-1"},
		{ID: "a2", Type: TypeWeekly, WeekdayCategoryIDs: map[Weekday]string{Friday: "cat-2"}},
		{ID: "a3", Type: TypeSpecificPeriod, FromDate: date(2024, 6, 1), ToDate: date(2024, 6, 5)},
	}

	set := NewAssignmentSet(list)
	require.NotNil(t, set.Default)
	require.NotNil(t, set.Weekly)
	require.NotNil(t, set.Specific)
	assert.Equal(t, "a1", set.Default.ID)
	assert.Equal(t, "a2", set.Weekly.ID)
	assert.Equal(t, "a3", set.Specific.ID)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(date(2024, 6, 3)))
	assert.Equal(t, Saturday, WeekdayOf(date(2024, 6, 8)))
	assert.Equal(t, Sunday, WeekdayOf(date(2024, 6, 9)))
}
