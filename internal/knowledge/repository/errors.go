package repository

import "errors"

var (
	ErrFailedToEmbed  = errors.New("failed to embed text")
	ErrFailedToSearch = errors.New("failed to search knowledge base")
	ErrFailedToIndex  = errors.New("failed to index document")
)
