package overview

import "errors"

var (
	ErrInvertedRange = errors.New("date start is after date end")
)
