package policy

import "errors"

var (
	ErrPolicyNotFound      = errors.New("server policy not found")
	ErrPolicyMisconfigured = errors.New("server policy misconfigured: yellow threshold exceeds red")
)
