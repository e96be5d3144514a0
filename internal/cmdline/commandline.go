package cmdline

// CommandLine carries a child command in both of the forms a platform
// backend may need: the original argument vector, and the single
// escaped string consumed by command-line based process creation.
//
// The arguments are read-only once captured; a CommandLine is safe to
// pass by value.
type CommandLine struct {
	args   []string
	joined string
}

// New builds a CommandLine from the program and its arguments.
// When force is set, every argument is quoted even if it contains no
// characters that require it.
func New(args []string, force bool) CommandLine {
	return CommandLine{
		args:   args,
		joined: Join(args, force),
	}
}

// String returns the escaped single-string form.
func (c CommandLine) String() string {
	return c.joined
}

// Args returns the original argument vector, program first.
func (c CommandLine) Args() []string {
	return c.args
}

// Program returns the child program name, or "" for an empty command.
func (c CommandLine) Program() string {
	if len(c.args) == 0 {
		return ""
	}
	return c.args[0]
}
