package http

import "errors"

var (
	errInvalidBody = errors.New("request body must be a JSON object with a message field")
)
