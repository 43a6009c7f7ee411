package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/szopu/argparse-manpager/manpager"
)

type options struct {
	outputDir      string
	attr           string
	recurse        bool
	section        int
	date           string
	launcher       bool
	launcherTarget string
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := app.opts
	if opts.launcher && opts.outputDir == "" {
		return errors.New("--launcher requires -o pointing to a directory")
	}
	decl, err := resolveTarget(ctx, target, opts.attr)
	if err != nil {
		return err
	}
	spec, err := manpager.Introspect(decl)
	if err != nil {
		return err
	}
	formatter := manpager.Formatter{Section: opts.section, Date: opts.date}
	pages, err := renderPages(formatter, spec, opts.recurse)
	if err != nil {
		return err
	}
	if opts.outputDir == "" {
		if len(pages) > 1 {
			return errors.New("multiple manual pages require -o pointing to a directory")
		}
		_, err := app.stdout.Write(pages[0].Content)
		return err
	}
	if err := manpager.WritePages(opts.outputDir, pages); err != nil {
		return err
	}
	if opts.launcher {
		launcherTarget := opts.launcherTarget
		if launcherTarget == "" {
			launcherTarget = spec.Name
		}
		return manpager.WriteLauncher(opts.outputDir, spec.Name, launcherTarget)
	}
	return nil
}

// renderPages produces the complete page set in memory so that a
// failure anywhere in the subcommand tree leaves no files behind.
func renderPages(f manpager.Formatter, spec *manpager.ProgramSpec, recurse bool) ([]manpager.Page, error) {
	if recurse {
		return f.Pages(spec)
	}
	content, err := f.Render(spec)
	if err != nil {
		return nil, err
	}
	section := f.Section
	if section == 0 {
		section = 1
	}
	return []manpager.Page{{
		Name:    fmt.Sprintf("%s.%d", spec.Name, section),
		Program: spec.Name,
		Content: content,
	}}, nil
}

// resolveTarget picks the introspection path: an existing YAML file is
// read as a declaration file, anything else is treated as a Go package
// pattern and loaded statically.
func resolveTarget(ctx context.Context, target, attr string) (manpager.Declaration, error) {
	if isDeclFile(target) {
		return manpager.LoadFile(target)
	}
	return manpager.LoadPackage(ctx, target, attr)
}

func isDeclFile(target string) bool {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".yaml", ".yml":
		return true
	}
	info, err := os.Stat(target)
	return err == nil && !info.IsDir()
}
