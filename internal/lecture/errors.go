package lecture

import "errors"

// Sentinel errors for the lecture store.
var (
	ErrNotFound        = errors.New("lecture not found")
	ErrMalformedRecord = errors.New("malformed metadata line")
	ErrNoHeaderMarker  = errors.New("no lecture header marker")
	ErrLectureExists   = errors.New("lecture file already exists")
	ErrIDRequired      = errors.New("lecture id is required")
	ErrInvalidID       = errors.New("invalid lecture id")
	ErrInvalidDate     = errors.New("invalid date (want YYYY-MM-DD)")
	ErrInvalidTime     = errors.New("invalid time (want HH:MM)")
	ErrNoEditorFound   = errors.New("no editor found (set config.editor, $EDITOR, or install vi/nano)")
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
)
