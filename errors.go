package biosvg

import "errors"

var (
	// ErrParse reports glyph source text with an unsupported command letter
	// or a coordinate that is not a number.
	ErrParse = errors.New("invalid path or unsupported command")
	// ErrRegex wraps a failure to compile the path token pattern.
	ErrRegex = errors.New("regex error")
	// ErrConfig reports an unusable builder configuration.
	ErrConfig = errors.New("invalid captcha config")
	// ErrUnknown is reserved for failures with no more specific kind.
	ErrUnknown = errors.New("unknown path error")
)
