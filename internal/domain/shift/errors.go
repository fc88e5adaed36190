package shift

import "errors"

var (
	// Assignment errors
	ErrAssignmentNotFound   = errors.New("shift assignment not found")
	ErrAssignmentTypeExists = errors.New("staff member already has an assignment of this shift type")

	// Category errors
	ErrCategoryNotFound = errors.New("shift category not found")
	ErrCategoryInUse    = errors.New("shift category is still referenced by an assignment")

	// Editor errors
	ErrEditorSubmitted = errors.New("editor session already submitted")
	ErrEditorNotInMode = errors.New("operation requires a different shift type mode")
	ErrEditorNoPeriod  = errors.New("specific period dates have not been set")
)
