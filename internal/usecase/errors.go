package usecase

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateBorrow = errors.New("book already borrowed by this patron")
	ErrOutOfStock      = errors.New("book out of stock")
	ErrForbidden       = errors.New("forbidden")
)
