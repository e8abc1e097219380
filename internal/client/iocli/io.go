// Package iocli abstracts terminal input and output so commands can be
// tested without a TTY.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal surface used by CLI commands
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput prints the prompt and reads one trimmed line
	ReadInput(prompt string) (string, error)

	// ReadPassword prints the prompt and reads a line without echo
	ReadPassword(prompt string) (string, error)
}
