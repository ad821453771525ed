package core

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid period")
)
