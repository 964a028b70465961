package domain

import "errors"

var (
	ErrCardNotFound   = errors.New("card not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrReturnNotFound = errors.New("return not found")
	ErrSetNotFound    = errors.New("card set not found")
)
