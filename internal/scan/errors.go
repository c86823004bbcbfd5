package scan

import "errors"

// ErrInvalidRange means the requested seed range ends before it starts.
// A scan cut short by its deadline is not an error; it returns partial
// hits with Summary.TimedOut set.
var ErrInvalidRange = errors.New("scan: invalid seed range")
