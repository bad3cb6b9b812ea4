package services

import "errors"

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrDuplicateKey       = errors.New("[service]: duplicate key")
	ErrValidation         = errors.New("[service]: validation error")
	ErrCodeSpaceExhausted = errors.New("[service]: short code space exhausted")
)
