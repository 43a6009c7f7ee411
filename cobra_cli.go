package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/szopu/argparse-manpager/manpager"
)

const rootLongDesc = `
manpager generates Unix manual pages from command-line argument declarations
without running the target program. It understands two kinds of targets:

  • A Go package pattern (./cmd/mytool): the package sources are scanned for
    flag and pflag registrations, which become the OPTIONS entries.
  • A YAML declaration file (mytool.yaml): the program describes its own
    arguments and subcommands declaratively.

Each program and subcommand becomes its own page (mytool.1, mytool-serve.1).
Pages go to stdout by default; point -o at a directory to write files, which
happens all-or-nothing so a failed subcommand never leaves a partial set.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "manpager [flags] <package|declaration-file>",
		Short:         "Generate Unix manual pages from argument declarations",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.outputDir, "output", "o", "", "write pages into this directory instead of stdout")
	flags.StringVarP(&app.opts.attr, "attr", "a", "", "flag-set variable holding the parser declaration")
	flags.BoolVarP(&app.opts.recurse, "recurse", "r", true, "emit one page per subcommand")
	flags.IntVar(&app.opts.section, "section", 1, "manual section for headers and filenames")
	flags.StringVar(&app.opts.date, "date", "", "page header date as YYYY-MM-DD (default today)")
	flags.BoolVar(&app.opts.launcher, "launcher", false, "also write a launcher script next to the pages")
	flags.StringVar(&app.opts.launcherTarget, "launcher-target", "", "command the launcher script runs (default: the program name)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args[0])
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newGenDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for manpager.

The output should be evaluated by your shell. For example:

  # bash
  manpager completion bash > /usr/local/etc/bash_completion.d/manpager

  # zsh
  manpager completion zsh > "${fpath[1]}/_manpager"

  # fish
  manpager completion fish | source

  # PowerShell
  manpager completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

// newGenDocsCmd dogfoods the generator: the CLI's own cobra command tree
// is introspected through the same adapter offered to library users and
// written out as manual pages.
func newGenDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate manpager's own manual pages",
		Long: strings.TrimSpace(`
Write a manual page for manpager and each of its subcommands into the given
directory, generated by introspecting the CLI's own argument declarations.

Example:

  manpager gen-docs ./docs/man
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		spec, err := manpager.Introspect(manpager.FromCommand(root))
		if err != nil {
			return err
		}
		pages, err := manpager.Formatter{}.Pages(spec)
		if err != nil {
			return err
		}
		return manpager.WritePages(target, pages)
	}
	return cmd
}
