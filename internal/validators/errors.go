package validators

import "errors"

var (
	ErrInvalidHost        = errors.New("invalid host")
	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)
