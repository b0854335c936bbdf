package health

import "errors"

var (
	ErrEmptyUserID = errors.New("user id is required")
	ErrEmptyInput  = errors.New("message text is required")
)
