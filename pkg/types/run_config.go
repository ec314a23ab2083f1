package types

// RunConfig carries the command line choices of one run. It is passed by
// value to every stage and never modified after the command parses its
// flags.
type RunConfig struct {
	// Reconfigure asks every question again.
	Reconfigure bool
	// Force rebuilds every enabled group regardless of version tokens.
	Force bool
	// NoUpdate skips updating the git submodules before building.
	NoUpdate bool
	// Verbose is the -v count.
	Verbose int

	AskAccent          bool
	AskTheme           bool
	AskSyntax          bool
	AskFirefoxSettings bool
}

// Narrow reports whether any single question was asked for again.
func (r RunConfig) Narrow() bool {
	return r.AskAccent || r.AskTheme || r.AskSyntax || r.AskFirefoxSettings
}

// ShowOutput reports whether external command output should be streamed.
func (r RunConfig) ShowOutput() bool {
	return r.Verbose > 0
}
