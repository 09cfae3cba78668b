package http

import "errors"

var errNoImage = errors.New("No image provided")
