package ports

// Prompter defines the interface for interactive terminal input. All prompts
// happen during resolution and confirmation; later stages never block on the
// user.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Interactive reports whether stdin is attached to a terminal. When it
	// returns false every other method fails, so callers must check it and
	// fall back to their non-interactive behavior.
	Interactive() bool

	// Confirm asks a yes/no question and returns the answer.
	Confirm(prompt string) (bool, error)

	// Input asks for a line of input, offering suggestion as the default
	// when the user submits an empty line.
	Input(prompt, suggestion string) (string, error)

	// Select asks the user to pick one of options and returns the choice.
	Select(prompt string, options []string) (string, error)
}
