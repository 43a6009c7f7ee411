// Package manpager turns command-line argument declarations into Unix
// manual pages.
//
// A declaration is anything implementing [Declaration]: a live
// [github.com/spf13/cobra.Command] (see [FromCommand]), a flag or pflag
// flag set (see [FromFlagSet] and [FromPFlagSet]), a Go package whose
// source registers flags (see [LoadPackage]), or a YAML declaration file
// (see [LoadFile]). [Introspect] walks a declaration into a [ProgramSpec]
// tree, and [Formatter] renders the tree as man(7) markup, one page per
// program and subcommand.
package manpager

import "strings"

// ArgumentSpec describes one declared option or positional argument.
// Specs are produced by introspection and not modified afterwards.
type ArgumentSpec struct {
	// Name is the primary form the argument was declared under,
	// e.g. "--bind" or "port".
	Name string
	// Aliases lists every form in declared order, short before long.
	// For a positional argument it holds just the name.
	Aliases []string
	// Positional marks arguments given by position rather than by flag.
	Positional bool
	// TakesValue reports whether the argument consumes a value.
	TakesValue bool
	// Default is the string form of the declared default, empty when none.
	Default string
	// Metavar is the value placeholder shown in SYNOPSIS and OPTIONS.
	// When empty it is derived from the name.
	Metavar string
	// Help is the declared usage text, possibly empty.
	Help string
	// Required arguments render without brackets in SYNOPSIS.
	Required bool
}

// Placeholder returns the value placeholder for the argument: Metavar if
// set, the bare name for positionals, and otherwise the name uppercased
// with leading dashes stripped.
func (a ArgumentSpec) Placeholder() string {
	if a.Metavar != "" {
		return a.Metavar
	}
	name := strings.TrimLeft(a.Name, "-")
	if a.Positional {
		return name
	}
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ProgramSpec is the introspected declaration tree for one program.
type ProgramSpec struct {
	// Name of the program, used in headers and output filenames.
	Name string
	// Short is the one-line description shown in NAME.
	Short string
	// Long is the body of the DESCRIPTION section.
	Long string
	// Epilog is trailing text rendered as a REMARKS section after
	// everything else, the counterpart of an argparse epilog.
	Epilog string
	// Args holds every argument in declared order.
	Args []ArgumentSpec
	// Commands holds subcommands in declared order, each documented
	// as its own manual page.
	Commands []*ProgramSpec
}

// Empty reports whether the program has nothing worth a page: no
// description of either length and no arguments.
func (p *ProgramSpec) Empty() bool {
	return p.Short == "" && p.Long == "" && len(p.Args) == 0
}

// Validate checks the tree invariants: argument names unique within a
// program, subcommand names unique among siblings. It returns an
// UnsupportedDeclarationError naming the offending program on violation.
func (p *ProgramSpec) Validate() error {
	seen := make(map[string]struct{}, len(p.Args))
	for _, arg := range p.Args {
		if _, dup := seen[arg.Name]; dup {
			return &UnsupportedDeclarationError{
				Module: p.Name,
				Reason: "duplicate argument " + arg.Name,
			}
		}
		seen[arg.Name] = struct{}{}
	}
	names := make(map[string]struct{}, len(p.Commands))
	for _, sub := range p.Commands {
		if _, dup := names[sub.Name]; dup {
			return &UnsupportedDeclarationError{
				Module: p.Name,
				Reason: "duplicate subcommand " + sub.Name,
			}
		}
		names[sub.Name] = struct{}{}
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	return nil
}
