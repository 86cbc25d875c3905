package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrBudgetNotUnique  = errors.New("a budget for this month and category already exists")
)
