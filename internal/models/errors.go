package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUsernameTaken = errors.New("this username is already registered")
	ErrEmailTaken    = errors.New("this email is already registered")

	ErrMonthOutOfRange = errors.New("the month must be between 1 and 12")

	// ErrCategoryInUse is wrapped with the count of blocking dependents.
	ErrCategoryInUse = errors.New("cannot delete a category that is still in use")
)
