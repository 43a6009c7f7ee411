package manpager

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FromCommand adapts a live cobra command tree to Declaration. Hidden
// flags and the built-in help and completion commands are not documented.
func FromCommand(cmd *cobra.Command) Declaration {
	return cobraDecl{cmd: cmd}
}

type cobraDecl struct {
	cmd *cobra.Command
}

func (d cobraDecl) Describe() (string, string, string) {
	return d.cmd.Name(), d.cmd.Short, d.cmd.Long
}

func (d cobraDecl) Arguments() []ArgumentSpec {
	var args []ArgumentSpec
	visitInOrder(d.cmd.Flags(), func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		args = append(args, argFromPFlag(f))
	})
	return args
}

func (d cobraDecl) Subcommands() []Declaration {
	var subs []Declaration
	for _, sub := range d.cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.IsAdditionalHelpTopicCommand() {
			continue
		}
		switch sub.Name() {
		case "help", "completion":
			continue
		}
		subs = append(subs, cobraDecl{cmd: sub})
	}
	return subs
}

func argFromPFlag(f *pflag.Flag) ArgumentSpec {
	long := "--" + f.Name
	aliases := make([]string, 0, 2)
	if f.Shorthand != "" {
		aliases = append(aliases, "-"+f.Shorthand)
	}
	aliases = append(aliases, long)
	takesValue := f.Value.Type() != "bool"
	def := ""
	if takesValue {
		def = f.DefValue
	}
	return ArgumentSpec{
		Name:       long,
		Aliases:    aliases,
		TakesValue: takesValue,
		Default:    def,
		Help:       f.Usage,
		Required:   requiredPFlag(f),
	}
}

func requiredPFlag(f *pflag.Flag) bool {
	values, ok := f.Annotations[cobra.BashCompOneRequiredFlag]
	return ok && len(values) > 0 && values[0] == "true"
}

// visitInOrder walks a pflag set in declaration order. VisitAll sorts
// lexically when SortFlags is set, so the flag is cleared for the walk
// and restored after.
func visitInOrder(fs *pflag.FlagSet, fn func(*pflag.Flag)) {
	sorted := fs.SortFlags
	fs.SortFlags = false
	fs.VisitAll(fn)
	fs.SortFlags = sorted
}
