package error

import "errors"

var (
	ErrEngineClosed         = errors.New("debugger engine is closed")
	ErrInvalidCommand       = errors.New("invalid command")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrCommandFileNotFound  = errors.New("command file not found")
	ErrLanguageNotSupported = errors.New("This language is not supported")
)
