package manpager

import "fmt"

// ModuleNotFoundError reports that the introspection target could not be
// located: no Go package matched the pattern, or the declaration file
// does not exist.
type ModuleNotFoundError struct {
	Module string
	Err    error
}

func (e *ModuleNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("module %q not found: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("module %q not found", e.Module)
}

func (e *ModuleNotFoundError) Unwrap() error { return e.Err }

// AttributeMissingError reports that the target was located but the
// expected parser declaration is absent: the named flag-set variable
// registers nothing, or no flag registrations exist at all.
type AttributeMissingError struct {
	Module    string
	Attribute string
}

func (e *AttributeMissingError) Error() string {
	return fmt.Sprintf("module %q has no parser declaration %q", e.Module, e.Attribute)
}

// UnsupportedDeclarationError reports a declaration the introspector
// cannot represent: non-literal flag registrations, invariant violations,
// or a cyclic subcommand reference.
type UnsupportedDeclarationError struct {
	Module string
	Reason string
}

func (e *UnsupportedDeclarationError) Error() string {
	return fmt.Sprintf("unsupported declaration in %q: %s", e.Module, e.Reason)
}

// EmptyProgramSpecError reports a program with neither a description nor
// any arguments, for which no meaningful page can be rendered.
type EmptyProgramSpecError struct {
	Program string
}

func (e *EmptyProgramSpecError) Error() string {
	return fmt.Sprintf("program %q declares no description and no arguments", e.Program)
}
