package command

import "errors"

var (
	// ErrUnknownCommand reports a name outside the command table.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrArity reports fewer arguments than the command needs.
	ErrArity = errors.New("command: not enough arguments")

	// ErrArgType reports an argument that cannot be coerced.
	ErrArgType = errors.New("command: bad argument type")
)
