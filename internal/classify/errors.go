package classify

import "errors"

var (
	// ErrImageUnreadable means the image file could not be opened or read.
	ErrImageUnreadable = errors.New("image file is missing or unreadable")
)
