package manpager

import (
	"flag"

	"github.com/spf13/pflag"
)

// FromFlagSet adapts a standard library flag set to Declaration. The
// standard library stores flags in a map and only exposes a lexical
// walk, so arguments appear in lexical rather than declaration order.
func FromFlagSet(name, short string, fs *flag.FlagSet) Declaration {
	return flagSetDecl{name: name, short: short, fs: fs}
}

type flagSetDecl struct {
	name  string
	short string
	fs    *flag.FlagSet
}

func (d flagSetDecl) Describe() (string, string, string) {
	return d.name, d.short, ""
}

func (d flagSetDecl) Arguments() []ArgumentSpec {
	var args []ArgumentSpec
	d.fs.VisitAll(func(f *flag.Flag) {
		long := "--" + f.Name
		if len(f.Name) == 1 {
			long = "-" + f.Name
		}
		takesValue := !isBoolFlag(f.Value)
		def := ""
		if takesValue {
			def = f.DefValue
		}
		args = append(args, ArgumentSpec{
			Name:       long,
			Aliases:    []string{long},
			TakesValue: takesValue,
			Default:    def,
			Help:       f.Usage,
		})
	})
	return args
}

func (d flagSetDecl) Subcommands() []Declaration { return nil }

func isBoolFlag(v flag.Value) bool {
	b, ok := v.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// FromPFlagSet adapts a bare pflag set to Declaration, for programs
// built on pflag without cobra. Arguments keep declaration order.
func FromPFlagSet(name, short string, fs *pflag.FlagSet) Declaration {
	return pflagSetDecl{name: name, short: short, fs: fs}
}

type pflagSetDecl struct {
	name  string
	short string
	fs    *pflag.FlagSet
}

func (d pflagSetDecl) Describe() (string, string, string) {
	return d.name, d.short, ""
}

func (d pflagSetDecl) Arguments() []ArgumentSpec {
	var args []ArgumentSpec
	visitInOrder(d.fs, func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		args = append(args, argFromPFlag(f))
	})
	return args
}

func (d pflagSetDecl) Subcommands() []Declaration { return nil }
