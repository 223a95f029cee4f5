package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee profile not found")
	ErrNoFieldsChanged  = errors.New("no fields changed")
)
