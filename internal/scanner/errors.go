package scanner

import "errors"

// File read errors
var (
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)
