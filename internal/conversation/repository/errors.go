package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert conversation entry")
	ErrFailedToList   = errors.New("failed to list conversation entries")
)
