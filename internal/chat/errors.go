package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("empty message")
)
