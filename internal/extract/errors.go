package extract

import "errors"

// Domain-specific errors for the extract package.
var (
	ErrEmptyUtterance = errors.New("utterance text is empty")
)
