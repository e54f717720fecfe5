package life

import "errors"

var (
	// ErrConfig reports invalid board or experiment parameters.
	ErrConfig = errors.New("life: invalid configuration")
	// ErrIO reports a state or table file that could not be read or written.
	ErrIO = errors.New("life: io failure")
	// ErrFormat reports malformed serialized state.
	ErrFormat = errors.New("life: malformed state")
)
