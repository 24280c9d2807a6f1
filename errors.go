package etag

import "errors"

var (
	ErrMissingEntity     = errors.New("argument entity is required")
	ErrInvalidEntityType = errors.New("argument entity must be string, []byte, or etag.Stat")
	ErrUnknownMode       = errors.New("etag mode must be one of auto, strong, or weak")
)
