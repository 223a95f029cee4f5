package user

import "errors"

var (
	ErrUserNotFound               = errors.New("user not found")
	ErrSuperuserPrivilegeRequired = errors.New("superuser privilege required")
)
