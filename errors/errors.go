package errors

import "fmt"

var (
	ErrOutOfRange            = fmt.Errorf("index out of range")
	ErrPreconditionViolation = fmt.Errorf("precondition violation")
	ErrEmptyMessage          = fmt.Errorf("message content is empty")
	ErrInvalidCharacter      = fmt.Errorf("replacement must be a single character")
)
