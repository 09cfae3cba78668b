package http

import "errors"

// errNoMessage matches the wire-level error text the front-end expects.
var errNoMessage = errors.New("No message provided")
