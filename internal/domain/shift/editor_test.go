package shift

import (
	"testing"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *EditorSession {
	return NewEditorSession("staff-1", "dept-1", "role-1")
}

func TestEditor_StatesAndTypeSelection(t *testing.T) {
	e := newSession()
	assert.Equal(t, StateEmpty, e.State())

	require.NoError(t, e.SelectType(TypeWeekly))
	assert.Equal(t, StateWeeklyMode, e.State())

	require.NoError(t, e.SelectType(TypeDefault))
	assert.Equal(t, StateDefaultMode, e.State())

	err := e.SelectType(Type("NIGHTLY"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestEditor_SwitchingModesDiscardsPartialInput(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeWeekly))
	require.NoError(t, e.SetWeekdayCategory(Monday, "cat-a"))

	// Switch away and back: the weekly input is gone, no merge.
	require.NoError(t, e.SelectType(TypeDefault))
	require.NoError(t, e.SetDefaultCategory("cat-b"))
	require.NoError(t, e.SelectType(TypeWeekly))

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, TypeWeekly, payload.ShiftType)
	assert.Empty(t, payload.WeekdayCategoryIDs)
	assert.Empty(t, payload.DefaultCategoryID)
}

func TestEditor_DefaultPayload(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeDefault))

	// Blank required field for the chosen type.
	_, err := e.BuildPayload()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "default_shift_category_id")

	require.NoError(t, e.SetDefaultCategory("cat-a"))
	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, TypeDefault, payload.ShiftType)
	assert.Equal(t, "cat-a", payload.DefaultCategoryID)
	assert.Equal(t, StateValidated, e.State())
}

func TestEditor_WeeklyOmitsClearedDays(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeWeekly))
	require.NoError(t, e.SetWeekdayCategory(Monday, "cat-a"))
	require.NoError(t, e.SetWeekdayCategory(Wednesday, "cat-b"))
	require.NoError(t, e.SetWeekdayCategory(Wednesday, "")) // cleared again

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, map[Weekday]string{Monday: "cat-a"}, payload.WeekdayCategoryIDs)
}

func TestEditor_SpecificPeriodRoundTrip(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeSpecificPeriod))

	from, _ := daterange.Parse("2024-06-01")
	to, _ := daterange.Parse("2024-06-05")
	require.NoError(t, e.SetPeriod(from, to))

	require.NoError(t, e.SetDateCategory("2024-06-01", "cat-a"))
	require.NoError(t, e.SetDateCategory("2024-06-03", "cat-b"))

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", payload.FromDate)
	assert.Equal(t, "2024-06-05", payload.ToDate)
	// 06-02/04/05 were seeded empty and must not be transmitted.
	assert.Equal(t, map[string]string{
		"2024-06-01": "cat-a",
		"2024-06-03": "cat-b",
	}, payload.DateCategoryIDs)
}

func TestEditor_ShrinkingRangeDropsStaleDatesOnSubmit(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeSpecificPeriod))

	from, _ := daterange.Parse("2024-06-01")
	wide, _ := daterange.Parse("2024-06-10")
	require.NoError(t, e.SetPeriod(from, wide))
	require.NoError(t, e.SetDateCategory("2024-06-02", "cat-a"))
	require.NoError(t, e.SetDateCategory("2024-06-09", "cat-b"))

	// Narrow the range; 06-09 stays visible in the session but is filtered
	// out of the payload.
	narrow, _ := daterange.Parse("2024-06-05")
	require.NoError(t, e.SetPeriod(from, narrow))

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"2024-06-02": "cat-a"}, payload.DateCategoryIDs)
}

func TestEditor_GrowingRangeKeepsExistingSelections(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeSpecificPeriod))

	from, _ := daterange.Parse("2024-06-01")
	to, _ := daterange.Parse("2024-06-03")
	require.NoError(t, e.SetPeriod(from, to))
	require.NoError(t, e.SetDateCategory("2024-06-02", "cat-a"))

	wider, _ := daterange.Parse("2024-06-07")
	require.NoError(t, e.SetPeriod(from, wider))

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"2024-06-02": "cat-a"}, payload.DateCategoryIDs)
}

func TestEditor_SpanBoundary(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeSpecificPeriod))

	from, _ := daterange.Parse("2024-06-01")
	fifteen, _ := daterange.Parse("2024-06-15")
	sixteen, _ := daterange.Parse("2024-06-16")

	// Exactly 15 days succeeds.
	require.NoError(t, e.SetPeriod(from, fifteen))

	// 16 days is rejected with a range error, never silently truncated.
	err := e.SetPeriod(from, sixteen)
	assert.ErrorIs(t, err, daterange.ErrRangeTooLong)

	// Inverted range is rejected too.
	err = e.SetPeriod(fifteen, from)
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestEditor_MissingSelectionFields(t *testing.T) {
	e := NewEditorSession("", "", "")
	require.NoError(t, e.SelectType(TypeDefault))
	require.NoError(t, e.SetDefaultCategory("cat-a"))

	_, err := e.BuildPayload()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "staff_id")
	assert.Contains(t, m, "department_id")
	assert.Contains(t, m, "role_id")
}

func TestEditor_EmptySessionRequiresType(t *testing.T) {
	e := newSession()
	_, err := e.BuildPayload()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "shift_type")
}

func TestEditor_ModeGuards(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeDefault))

	assert.ErrorIs(t, e.SetWeekdayCategory(Monday, "cat-a"), ErrEditorNotInMode)
	assert.ErrorIs(t, e.SetDateCategory("2024-06-01", "cat-a"), ErrEditorNotInMode)

	require.NoError(t, e.SelectType(TypeSpecificPeriod))
	assert.ErrorIs(t, e.SetDateCategory("2024-06-01", "cat-a"), ErrEditorNoPeriod)
}

func TestEditor_SubmitLifecycle(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeDefault))
	require.NoError(t, e.SetDefaultCategory("cat-a"))

	// Cannot mark submitted before validation.
	assert.ErrorIs(t, e.MarkSubmitted(), ErrEditorNotInMode)

	_, err := e.BuildPayload()
	require.NoError(t, err)
	require.NoError(t, e.MarkSubmitted())
	assert.Equal(t, StateSubmitted, e.State())

	// Submitted sessions are frozen.
	assert.ErrorIs(t, e.SetDefaultCategory("cat-b"), ErrEditorSubmitted)
	assert.ErrorIs(t, e.SelectType(TypeWeekly), ErrEditorSubmitted)
	_, err = e.BuildPayload()
	assert.ErrorIs(t, err, ErrEditorSubmitted)
}

func TestEditor_EditingAfterValidationReopensMode(t *testing.T) {
	e := newSession()
	require.NoError(t, e.SelectType(TypeDefault))
	require.NoError(t, e.SetDefaultCategory("cat-a"))
	_, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, StateValidated, e.State())

	require.NoError(t, e.SetDefaultCategory("cat-b"))
	assert.Equal(t, StateDefaultMode, e.State())

	payload, err := e.BuildPayload()
	require.NoError(t, err)
	assert.Equal(t, "cat-b", payload.DefaultCategoryID)
}
