package server

import "errors"

var (
	errNoServerAddress = errors.New("no http address is configured")
)
