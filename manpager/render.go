package manpager

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// Formatter renders a ProgramSpec tree as man(7) markup. The zero value
// renders section 1 pages dated today; set Date for byte-reproducible
// output.
type Formatter struct {
	// Section is the manual section, 1 when zero.
	Section int
	// Date is the ISO date in the .TH header, today when empty.
	Date string
}

// Page is one rendered manual page.
type Page struct {
	// Name is the output filename, e.g. "prog.1" or "prog-serve.1".
	Name string
	// Program is the dashed program path the page documents.
	Program string
	// Content is the complete roff text.
	Content []byte
}

func (f Formatter) section() int {
	if f.Section == 0 {
		return 1
	}
	return f.Section
}

func (f Formatter) date() string {
	if f.Date != "" {
		return f.Date
	}
	return time.Now().Format("2006-01-02")
}

// Render writes the manual page for a single program, ignoring its
// subcommand tree beyond the COMMANDS listing. It fails with
// EmptyProgramSpecError when the program declares neither a description
// nor any arguments.
func (f Formatter) Render(spec *ProgramSpec) ([]byte, error) {
	if spec.Empty() {
		return nil, &EmptyProgramSpecError{Program: spec.Name}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, ".TH \"%s\" %d %s \"\" \"General Commands Manual\"\n",
		escapeDashes(spec.Name), f.section(), f.date())
	f.renderName(&buf, spec)
	f.renderSynopsis(&buf, spec)
	f.renderDescription(&buf, spec)
	f.renderOptions(&buf, spec)
	f.renderCommands(&buf, spec)
	f.renderRemarks(&buf, spec)
	return buf.Bytes(), nil
}

// Pages renders one page per program in the tree, root first, children
// in declared order. Subcommand pages are titled and named by the dashed
// program path. Any failure returns no pages at all.
func (f Formatter) Pages(spec *ProgramSpec) ([]Page, error) {
	return f.appendPages(nil, spec, nil)
}

func (f Formatter) appendPages(pages []Page, spec *ProgramSpec, path []string) ([]Page, error) {
	path = append(path, spec.Name)
	dashed := strings.Join(path, "-")
	node := *spec
	node.Name = dashed
	content, err := f.Render(&node)
	if err != nil {
		return nil, err
	}
	pages = append(pages, Page{
		Name:    fmt.Sprintf("%s.%d", dashed, f.section()),
		Program: dashed,
		Content: content,
	})
	for _, sub := range spec.Commands {
		pages, err = f.appendPages(pages, sub, path)
		if err != nil {
			return nil, err
		}
	}
	return pages, nil
}

func (f Formatter) renderName(w io.Writer, spec *ProgramSpec) {
	fmt.Fprintln(w, ".SH NAME")
	if spec.Short == "" {
		fmt.Fprintln(w, escapeDashes(spec.Name))
		return
	}
	fmt.Fprintf(w, "%s \\- %s\n", escapeDashes(spec.Name), sanitize(spec.Short, ".PP"))
}

func (f Formatter) renderSynopsis(w io.Writer, spec *ProgramSpec) {
	fmt.Fprintln(w, ".SH SYNOPSIS")
	parts := []string{bold(escapeDashes(spec.Name))}
	for _, arg := range spec.Args {
		parts = append(parts, synopsisToken(arg))
	}
	if len(spec.Commands) > 0 {
		parts = append(parts, italic("command"), "...")
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func synopsisToken(arg ArgumentSpec) string {
	var token string
	if arg.Positional {
		token = italic(escapeDashes(arg.Placeholder()))
	} else {
		// The usage line shows the first declared form, short before
		// long, matching how the option was declared.
		name := arg.Name
		if len(arg.Aliases) > 0 {
			name = arg.Aliases[0]
		}
		token = bold(escapeDashes(name))
		if arg.TakesValue {
			token += " " + italic(escapeDashes(arg.Placeholder()))
		}
	}
	if arg.Required {
		return token
	}
	return "[" + token + "]"
}

func (f Formatter) renderDescription(w io.Writer, spec *ProgramSpec) {
	if spec.Long == "" {
		return
	}
	fmt.Fprintln(w, ".SH DESCRIPTION")
	fmt.Fprintln(w, sanitize(spec.Long, ".PP"))
}

func (f Formatter) renderOptions(w io.Writer, spec *ProgramSpec) {
	if len(spec.Args) == 0 {
		return
	}
	fmt.Fprintln(w, ".SH OPTIONS")
	for _, arg := range spec.Args {
		fmt.Fprintln(w, ".TP")
		fmt.Fprintln(w, optionInvocation(arg))
		help := arg.Help
		if arg.Default != "" {
			if help != "" {
				help += " "
			}
			help += fmt.Sprintf("(default: %s)", arg.Default)
		}
		if text := sanitize(help, ".IP"); text != "" {
			fmt.Fprintln(w, text)
		}
	}
}

func optionInvocation(arg ArgumentSpec) string {
	if arg.Positional {
		return italic(escapeDashes(arg.Placeholder()))
	}
	aliases := arg.Aliases
	if len(aliases) == 0 {
		aliases = []string{arg.Name}
	}
	forms := make([]string, len(aliases))
	for i, alias := range aliases {
		forms[i] = bold(escapeDashes(alias))
	}
	line := strings.Join(forms, ", ")
	if arg.TakesValue {
		line += " " + italic(escapeDashes(arg.Placeholder()))
	}
	return line
}

func (f Formatter) renderRemarks(w io.Writer, spec *ProgramSpec) {
	if spec.Epilog == "" {
		return
	}
	fmt.Fprintln(w, ".SH REMARKS")
	fmt.Fprintln(w, sanitize(spec.Epilog, ".PP"))
}

func (f Formatter) renderCommands(w io.Writer, spec *ProgramSpec) {
	if len(spec.Commands) == 0 {
		return
	}
	fmt.Fprintln(w, ".SH COMMANDS")
	for _, sub := range spec.Commands {
		fmt.Fprintln(w, ".TP")
		fmt.Fprintln(w, bold(escapeDashes(sub.Name)))
		line := fmt.Sprintf("See %s(%d).",
			bold(escapeDashes(spec.Name+"-"+sub.Name)), f.section())
		if short := sanitize(sub.Short, ".IP"); short != "" {
			line = short + "\n" + line
		}
		fmt.Fprintln(w, line)
	}
}
