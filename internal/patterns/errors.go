package patterns

import "errors"

// Catalog construction errors
var (
	ErrEmptyRuleName = errors.New("rule name is empty")
	ErrDuplicateRule = errors.New("duplicate rule name")
	ErrCaptureGroups = errors.New("rule must have exactly one capturing group")
)
