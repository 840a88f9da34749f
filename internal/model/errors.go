package model

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrSlugTaken         = errors.New("slug already exists")
	ErrSKUTaken          = errors.New("SKU already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBusy              = errors.New("resource busy")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)
