package resolver

// Choice is one entry of a menu
type Choice struct {
	Value string
	Label string
}

// Prompter asks the user questions. Implementations live in pkg/ui; tests
// use a scripted one.
type Prompter interface {
	// Select shows a menu and returns the chosen value. def is the value
	// picked on an empty answer.
	Select(title string, choices []Choice, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, defaultYes bool) (bool, error)

	// Warn prints a diagnostic before the question is asked again.
	Warn(message string)
}

// ToolFinder reports whether an executable is on PATH
type ToolFinder interface {
	LookPath(name string) bool
}
