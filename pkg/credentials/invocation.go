package credentials

import "context"

// Invocation is a resolved helper command, ready to launch. It is one
// of exactly two forms: a [ShellInvocation] handed to a shell verbatim,
// or an [ArgvInvocation] executed directly.
type Invocation interface {
	// withVerb returns a copy of the invocation with a protocol verb
	// appended as the final token.
	withVerb(verb string) Invocation

	// run launches the invocation with input on standard input and
	// blocks until the process exits.
	run(ctx context.Context, sys System, input []byte) (RunResult, error)
}

// ShellInvocation is a command string interpreted by a shell. Arbitrary
// shell syntax, including functions and pipes, is preserved verbatim.
type ShellInvocation string

func (s ShellInvocation) withVerb(verb string) Invocation {
	return ShellInvocation(string(s) + " " + verb)
}

func (s ShellInvocation) run(ctx context.Context, sys System, input []byte) (RunResult, error) {
	return sys.RunShell(ctx, string(s), input)
}

// ArgvInvocation is an ordered argument list whose first element is the
// executable to launch.
type ArgvInvocation []string

func (a ArgvInvocation) withVerb(verb string) Invocation {
	argv := make(ArgvInvocation, 0, len(a)+1)
	argv = append(argv, a...)
	return append(argv, verb)
}

func (a ArgvInvocation) run(ctx context.Context, sys System, input []byte) (RunResult, error) {
	return sys.Run(ctx, a[0], a[1:], input)
}
