package manpager

// Declaration is the capability set an argument-parser object must
// expose to be documented. Adapters in this package implement it for
// cobra commands, flag and pflag sets, statically loaded Go packages,
// and YAML declaration files; anything else can supply its own.
type Declaration interface {
	// Describe returns the program name, the one-line description and
	// the long description. Name must be non-empty.
	Describe() (name, short, long string)
	// Arguments returns the declared arguments in declaration order.
	Arguments() []ArgumentSpec
	// Subcommands returns nested declarations in declaration order,
	// or nil when the program has none.
	Subcommands() []Declaration
}

// Epilogued is an optional extension of Declaration for parsers that
// carry trailing remarks (an argparse epilog); the text becomes the
// page's REMARKS section.
type Epilogued interface {
	Epilog() string
}

// Introspect walks a declaration tree into a validated ProgramSpec.
// Recursion depth is unbounded; a declaration that reappears as its own
// ancestor fails with UnsupportedDeclarationError.
func Introspect(d Declaration) (*ProgramSpec, error) {
	spec, err := introspect(d, map[Declaration]struct{}{})
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func introspect(d Declaration, seen map[Declaration]struct{}) (*ProgramSpec, error) {
	name, short, long := d.Describe()
	if _, cyclic := seen[d]; cyclic {
		return nil, &UnsupportedDeclarationError{
			Module: name,
			Reason: "cyclic subcommand reference",
		}
	}
	seen[d] = struct{}{}
	defer delete(seen, d)

	spec := &ProgramSpec{
		Name:  name,
		Short: short,
		Long:  long,
		Args:  d.Arguments(),
	}
	if e, ok := d.(Epilogued); ok {
		spec.Epilog = e.Epilog()
	}
	for _, sub := range d.Subcommands() {
		child, err := introspect(sub, seen)
		if err != nil {
			return nil, err
		}
		spec.Commands = append(spec.Commands, child)
	}
	return spec, nil
}
