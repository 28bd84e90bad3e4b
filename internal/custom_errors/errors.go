package custom_errors

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrPostValidation = errors.New("missing required post fields")
	ErrDatabaseQuery  = errors.New("database query error")
	ErrDatabaseScan   = errors.New("database scan error")
)
