// # manpager
//
// `manpager` generates Unix manual pages from the argument declarations of
// command-line programs, without ever running them. It is a Go rework of the
// argparse-manpager idea: the declaration of a program's options is data, and
// a man page is just a rendering of that data.
//
// Key capabilities:
//
//   - introspect a Go package statically: the sources are scanned for `flag`
//     and `pflag` registration calls (`flag.String`, `fs.BoolVarP`, ...) and
//     every registration becomes an OPTIONS entry, with NAME and DESCRIPTION
//     taken from the package documentation comment.
//   - read a YAML declaration file for programs that want to describe their
//     arguments (including positionals and subcommands) explicitly.
//   - adapt live parser objects through the `manpager` library package:
//     cobra commands, pflag sets, and standard library flag sets all satisfy
//     the same small Declaration interface, and anything else can implement
//     it directly.
//   - render classic man(7) markup with the fixed section order NAME,
//     SYNOPSIS, DESCRIPTION, OPTIONS, COMMANDS, arguments in declaration
//     order, optional arguments bracketed in the synopsis.
//   - emit one page per program and subcommand (`mytool.1`,
//     `mytool-serve.1`), rendered fully in memory before any file is
//     written so a failing subcommand never leaves a partial page set.
//   - optionally write a POSIX sh launcher script per program for
//     build-system installation steps.
//   - ship a Cobra-powered CLI with `--help`, `--version`, shell completion,
//     and a `gen-docs` helper that documents the CLI with itself.
//
// ## Usage
//
//	manpager [flags] <package|declaration-file>
//
// Examples:
//
//   - Render a Go package's page to stdout:
//
//     manpager ./cmd/mytool
//
//   - Write the full page set for a declaration file into a man directory:
//
//     manpager -o ./dist/man ./mytool.yaml
//
//   - Restrict introspection to one flag-set variable and pin the header
//     date for reproducible builds:
//
//     manpager -a serveFlags --date 2026-01-01 -o ./dist/man ./cmd/serve
//
//   - Generate manpager's own manual pages:
//
//     manpager gen-docs ./docs/man
//
// ## Supported Flags
//
//   - `-o DIR`: write pages into `DIR` (stdout when omitted; stdout only
//     works when a single page is produced).
//   - `-a NAME`: only count flag registrations on the flag-set variable
//     `NAME`; the run fails with a missing-attribute error when that
//     variable registers nothing.
//   - `-r`: recurse into subcommands, one page each (default true).
//   - `--section N`: manual section for headers and filenames (default 1).
//   - `--date YYYY-MM-DD`: date for the `.TH` header (default today).
//   - `--launcher`: also write an executable launcher script per program.
//   - `--launcher-target CMD`: command the launcher runs (default: the
//     program name).
//
// ## Declaration Files
//
// A YAML declaration file makes introspection a pure data read:
//
//	program: http.server
//	description: serve files over HTTP
//	arguments:
//	  - name: --bind
//	    value: true
//	    metavar: ADDRESS
//	    help: address to bind
//	  - name: port
//	    positional: true
//	    help: port to listen on
//	commands:
//	  - program: serve
//	    description: run the server in the foreground
//
// A `remarks` key adds a trailing REMARKS section to the page.
//
// ## Build-System Integration
//
// The `manpager` library package is the callable build step: load a
// declaration with `LoadPackage` or `LoadFile`, walk it with `Introspect`,
// render with `Formatter.Pages`, and write with `WritePages` and
// `WriteLauncher`. The CLI is a thin driver over exactly this sequence.
//
// ## Errors
//
// Failures carry their kind: module-not-found, missing parser attribute,
// unsupported declaration (including cyclic subcommand references), and
// empty program. The CLI prints `manpager: <error>` to stderr and exits
// non-zero; library callers can match the concrete error types with
// `errors.As`.
package main
