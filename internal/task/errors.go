package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotAuthenticated = errors.New("user identity required")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNothingToSave    = errors.New("card holds nothing to save")
)
