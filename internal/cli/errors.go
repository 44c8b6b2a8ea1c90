package cli

import "errors"

// ErrUsage marks a command invoked with the wrong number of arguments.
var ErrUsage = errors.New("cli: usage error")
