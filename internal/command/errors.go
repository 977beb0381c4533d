package command

import "errors"

var (
	ErrNotCommand       = errors.New("not a command")
	ErrEmptyCommand     = errors.New("empty command")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrDuplicateCommand = errors.New("command already registered")
)
