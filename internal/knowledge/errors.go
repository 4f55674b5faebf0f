package knowledge

import "errors"

var (
	ErrEmptyQuery = errors.New("query must not be empty")
	ErrEmptyText  = errors.New("text must not be empty")
)
