package marmoset

// Config controls a REPL session. Prompt strings are fixed for the
// lifetime of the session once attached.
type Config struct {
	PrimaryPrompt      string
	ContinuationPrompt string
	Banner             string   // written once at attach; empty disables it
	ExitCommands       []string // inputs that end the session (e.g. "exit"); nil disables
	Color              bool     // ANSI color for prompts and diagnostics
	Debug              bool     // enable debug logging
}

// DefaultConfig returns the configuration both hosts start from.
func DefaultConfig() *Config {
	return &Config{
		PrimaryPrompt:      ">> ",
		ContinuationPrompt: ".. ",
		Banner:             "Marmoset REPL",
	}
}

func (c *Config) clone() *Config {
	dup := *c
	dup.ExitCommands = append([]string(nil), c.ExitCommands...)
	return &dup
}
