package shift

import (
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
)

// MaxSpecificPeriodDays caps the inclusive span of a SPECIFIC_PERIOD
// assignment. Longer ranges are rejected, never truncated.
const MaxSpecificPeriodDays = 15

type EditorState string

const (
	StateEmpty        EditorState = "EMPTY"
	StateDefaultMode  EditorState = "DEFAULT_MODE"
	StateWeeklyMode   EditorState = "WEEKLY_MODE"
	StateSpecificMode EditorState = "SPECIFIC_MODE"
	StateValidated    EditorState = "VALIDATED"
	StateSubmitted    EditorState = "SUBMITTED"
)

// AssignmentPayload is the normalized outbound shape handed to the
// persistence layer after a successful BuildPayload. Only the fields for the
// selected shift type are populated.
type AssignmentPayload struct {
	StaffID            string             `json:"staff_id"`
	DepartmentID       string             `json:"department_id"`
	RoleID             string             `json:"role_id"`
	ShiftType          Type               `json:"shift_type"`
	DefaultCategoryID  string             `json:"default_shift_category_id,omitempty"`
	WeekdayCategoryIDs map[Weekday]string `json:"day_to_category_id,omitempty"`
	FromDate           string             `json:"from_date,omitempty"`
	ToDate             string             `json:"to_date,omitempty"`
	DateCategoryIDs    map[string]string  `json:"date_to_category_id,omitempty"`
}

// EditorSession tracks one in-progress assignment edit:
// EMPTY → DEFAULT_MODE | WEEKLY_MODE | SPECIFIC_MODE → VALIDATED → SUBMITTED.
// A session belongs to a single edit interaction and must not be shared
// across concurrent edits.
type EditorSession struct {
	state        EditorState
	staffID      string
	departmentID string
	roleID       string

	shiftType          Type
	defaultCategoryID  string
	weekdayCategoryIDs map[Weekday]string
	hasPeriod          bool
	fromDate           time.Time
	toDate             time.Time
	dateCategoryIDs    map[string]string
}

func NewEditorSession(staffID, departmentID, roleID string) *EditorSession {
	return &EditorSession{
		state:        StateEmpty,
		staffID:      staffID,
		departmentID: departmentID,
		roleID:       roleID,
	}
}

func (e *EditorSession) State() EditorState {
	return e.state
}

// SelectType enters the mode for the chosen shift type. Switching modes
// discards the other modes' partial input; there is no merge.
func (e *EditorSession) SelectType(t Type) error {
	if e.state == StateSubmitted {
		return ErrEditorSubmitted
	}
	if !validator.IsInSlice(string(t), TypeValues) {
		return validator.ValidationErrors{{
			Field:   "shift_type",
			Message: "shift_type must be one of: DEFAULT, WEEKLY, SPECIFIC_PERIOD",
		}}
	}

	if e.shiftType != t {
		e.defaultCategoryID = ""
		e.weekdayCategoryIDs = nil
		e.hasPeriod = false
		e.fromDate, e.toDate = time.Time{}, time.Time{}
		e.dateCategoryIDs = nil
	}
	e.shiftType = t

	switch t {
	case TypeDefault:
		e.state = StateDefaultMode
	case TypeWeekly:
		e.state = StateWeeklyMode
	case TypeSpecificPeriod:
		e.state = StateSpecificMode
	}
	return nil
}

// SetDefaultCategory records the default category selection.
func (e *EditorSession) SetDefaultCategory(categoryID string) error {
	if err := e.requireMode(StateDefaultMode); err != nil {
		return err
	}
	e.defaultCategoryID = categoryID
	return nil
}

// SetWeekdayCategory records a weekday selection. An empty category id clears
// the weekday; cleared weekdays are omitted from the payload rather than sent
// as empty strings.
func (e *EditorSession) SetWeekdayCategory(day Weekday, categoryID string) error {
	if err := e.requireMode(StateWeeklyMode); err != nil {
		return err
	}
	if !validator.IsInSlice(string(day), WeekdayValues) {
		return validator.ValidationErrors{{
			Field:   "day",
			Message: "day must be an upper-case weekday name (MONDAY..SUNDAY)",
		}}
	}

	if categoryID == "" {
		delete(e.weekdayCategoryIDs, day)
		return nil
	}
	if e.weekdayCategoryIDs == nil {
		e.weekdayCategoryIDs = make(map[Weekday]string)
	}
	e.weekdayCategoryIDs[day] = categoryID
	return nil
}

// SetPeriod sets or changes the SPECIFIC_PERIOD date range and reconciles the
// per-date map against the recomputed sequence: dates newly in range are
// seeded with an empty (unassigned) entry, existing selections are kept, and
// entries now outside the range stay visible for the operator but are dropped
// at submit time.
func (e *EditorSession) SetPeriod(from, to time.Time) error {
	if err := e.requireMode(StateSpecificMode); err != nil {
		return err
	}

	dates, err := daterange.EnumerateBounded(from, to, MaxSpecificPeriodDays)
	if err != nil {
		return err
	}

	if e.dateCategoryIDs == nil {
		e.dateCategoryIDs = make(map[string]string, len(dates))
	}
	for _, d := range dates {
		key := daterange.Format(d)
		if _, ok := e.dateCategoryIDs[key]; !ok {
			e.dateCategoryIDs[key] = ""
		}
	}

	e.fromDate, e.toDate = daterange.Normalize(from), daterange.Normalize(to)
	e.hasPeriod = true
	return nil
}

// SetDateCategory records a per-date selection. An empty category id marks
// the date unassigned, which is treated identically to an absent entry.
func (e *EditorSession) SetDateCategory(isoDate, categoryID string) error {
	if err := e.requireMode(StateSpecificMode); err != nil {
		return err
	}
	if !e.hasPeriod {
		return ErrEditorNoPeriod
	}
	if _, err := daterange.Parse(isoDate); err != nil {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	e.dateCategoryIDs[isoDate] = categoryID
	return nil
}

// BuildPayload validates the session and produces the outbound payload for
// the selected shift type. For SPECIFIC_PERIOD the per-date map is filtered
// to entries that are inside [from, to] and non-empty: the persisted map must
// never contain stale dates from a previously wider range or empty
// placeholders. On success the session transitions to VALIDATED.
func (e *EditorSession) BuildPayload() (AssignmentPayload, error) {
	if e.state == StateSubmitted {
		return AssignmentPayload{}, ErrEditorSubmitted
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(e.staffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if validator.IsEmpty(e.departmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(e.roleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "role_id is required"})
	}
	if e.state == StateEmpty {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "shift_type is required"})
		return AssignmentPayload{}, errs
	}

	payload := AssignmentPayload{
		StaffID:      e.staffID,
		DepartmentID: e.departmentID,
		RoleID:       e.roleID,
		ShiftType:    e.shiftType,
	}

	switch e.shiftType {
	case TypeDefault:
		if validator.IsEmpty(e.defaultCategoryID) {
			errs = append(errs, validator.ValidationError{
				Field:   "default_shift_category_id",
				Message: "default_shift_category_id is required for DEFAULT assignments",
			})
		}
		payload.DefaultCategoryID = e.defaultCategoryID

	case TypeWeekly:
		days := make(map[Weekday]string, len(e.weekdayCategoryIDs))
		for day, id := range e.weekdayCategoryIDs {
			if id != "" {
				days[day] = id
			}
		}
		payload.WeekdayCategoryIDs = days

	case TypeSpecificPeriod:
		if !e.hasPeriod {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date and to_date are required for SPECIFIC_PERIOD assignments",
			})
			break
		}
		filtered := make(map[string]string)
		for key, id := range e.dateCategoryIDs {
			if id == "" {
				continue
			}
			d, err := daterange.Parse(key)
			if err != nil {
				continue
			}
			if d.Before(e.fromDate) || d.After(e.toDate) {
				continue
			}
			filtered[key] = id
		}
		payload.FromDate = daterange.Format(e.fromDate)
		payload.ToDate = daterange.Format(e.toDate)
		payload.DateCategoryIDs = filtered
	}

	if len(errs) > 0 {
		return AssignmentPayload{}, errs
	}

	e.state = StateValidated
	return payload, nil
}

// MarkSubmitted finalizes the session after the payload has been handed to
// the persistence layer. The session accepts no further edits.
func (e *EditorSession) MarkSubmitted() error {
	if e.state != StateValidated {
		return ErrEditorNotInMode
	}
	e.state = StateSubmitted
	return nil
}

func (e *EditorSession) requireMode(mode EditorState) error {
	if e.state == StateSubmitted {
		return ErrEditorSubmitted
	}
	// Editing after validation reopens the mode.
	if e.state == StateValidated && e.modeState() == mode {
		e.state = mode
	}
	if e.state != mode {
		return ErrEditorNotInMode
	}
	return nil
}

func (e *EditorSession) modeState() EditorState {
	switch e.shiftType {
	case TypeDefault:
		return StateDefaultMode
	case TypeWeekly:
		return StateWeeklyMode
	case TypeSpecificPeriod:
		return StateSpecificMode
	}
	return StateEmpty
}
