package resumes

import "errors"

var (
	ErrEmptyFile            = errors.New("no file uploaded")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrStorage              = errors.New("object storage failed")
	ErrAnalysis             = errors.New("resume analysis failed")
	ErrNotFound             = errors.New("resume not found")
	ErrForbidden            = errors.New("access denied")
)
