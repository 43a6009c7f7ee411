package manpager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httpServerSpec() *ProgramSpec {
	return &ProgramSpec{
		Name:  "http.server",
		Short: "serve files over HTTP",
		Args: []ArgumentSpec{
			{Name: "--bind", Aliases: []string{"--bind"}, TakesValue: true, Metavar: "ADDRESS", Help: "address to bind"},
			{Name: "port", Aliases: []string{"port"}, Positional: true, TakesValue: true, Help: "port to listen on"},
		},
	}
}

func TestRenderSynopsisScenario(t *testing.T) {
	out, err := Formatter{Date: "2026-01-01"}.Render(httpServerSpec())
	require.NoError(t, err)
	assert.Contains(t, string(out),
		".SH SYNOPSIS\n"+`\fBhttp.server\fP [\fB\-\-bind\fP \fIADDRESS\fP] [\fIport\fP]`+"\n")
}

func TestRenderOptionsCountAndOrder(t *testing.T) {
	spec := httpServerSpec()
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	text := string(out)
	assert.Equal(t, len(spec.Args), strings.Count(text, ".TP"))
	bindIdx := strings.Index(text, `\-\-bind`)
	portIdx := strings.LastIndex(text, `\fIport\fP`)
	require.NotEqual(t, -1, bindIdx)
	require.NotEqual(t, -1, portIdx)
	assert.Less(t, bindIdx, portIdx, "options must keep declaration order")
}

func TestRenderIdempotent(t *testing.T) {
	f := Formatter{Date: "2026-01-01"}
	first, err := f.Render(httpServerSpec())
	require.NoError(t, err)
	second, err := f.Render(httpServerSpec())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderSynopsisUsesFirstAlias(t *testing.T) {
	spec := &ProgramSpec{
		Name:  "tool",
		Short: "does things",
		Args: []ArgumentSpec{
			{Name: "--config", Aliases: []string{"-c", "--config"}, TakesValue: true},
		},
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	assert.Contains(t, string(out), ".SH SYNOPSIS\n"+`\fBtool\fP [\fB\-c\fP \fICONFIG\fP]`+"\n")
}

func TestRenderZeroArgsWithDescription(t *testing.T) {
	out, err := Formatter{Date: "2026-01-01"}.Render(&ProgramSpec{Name: "tool", Short: "does things"})
	require.NoError(t, err)
	assert.Contains(t, string(out), ".SH SYNOPSIS\n"+`\fBtool\fP`+"\n")
}

func TestRenderEmptySpec(t *testing.T) {
	_, err := Formatter{}.Render(&ProgramSpec{Name: "hollow"})
	var empty *EmptyProgramSpecError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "hollow", empty.Program)
}

func TestRenderRequiredUnbracketed(t *testing.T) {
	spec := &ProgramSpec{
		Name:  "tool",
		Short: "does things",
		Args: []ArgumentSpec{
			{Name: "--config", Aliases: []string{"--config"}, TakesValue: true, Required: true},
			{Name: "--debug", Aliases: []string{"--debug"}},
		},
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, ` \fB\-\-config\fP \fICONFIG\fP `)
	assert.NotContains(t, text, `[\fB\-\-config\fP`)
	assert.Contains(t, text, `[\fB\-\-debug\fP]`)
}

func TestRenderEmptyHelpStillListed(t *testing.T) {
	spec := &ProgramSpec{
		Name:  "tool",
		Short: "does things",
		Args:  []ArgumentSpec{{Name: "--quiet", Aliases: []string{"-q", "--quiet"}}},
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	assert.Contains(t, string(out), ".TP\n"+`\fB\-q\fP, \fB\-\-quiet\fP`+"\n")
}

func TestRenderDescriptionParagraphs(t *testing.T) {
	spec := &ProgramSpec{
		Name: "tool",
		Long: "First paragraph about the tool.\n\nSecond paragraph with a --flag mention.",
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, ".SH DESCRIPTION")
	assert.Contains(t, text, "First paragraph about the tool.\n.PP\nSecond paragraph")
	assert.Contains(t, text, `\-\-flag`)
}

func TestRenderDefaultShown(t *testing.T) {
	spec := &ProgramSpec{
		Name:  "tool",
		Short: "does things",
		Args: []ArgumentSpec{
			{Name: "--level", Aliases: []string{"--level"}, TakesValue: true, Default: "info", Help: "log level"},
		},
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	assert.Contains(t, string(out), "log level (default: info)")
}

func TestRenderRemarksTrailing(t *testing.T) {
	spec := &ProgramSpec{
		Name:     "tool",
		Short:    "does things",
		Epilog:   "Report bugs upstream.",
		Commands: []*ProgramSpec{{Name: "serve", Short: "run the server"}},
	}
	out, err := Formatter{Date: "2026-01-01"}.Render(spec)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, ".SH REMARKS\nReport bugs upstream.\n")
	assert.Greater(t, strings.Index(text, ".SH REMARKS"), strings.Index(text, ".SH COMMANDS"))
}

func TestPagesTree(t *testing.T) {
	spec := &ProgramSpec{
		Name:  "prog",
		Short: "top level",
		Commands: []*ProgramSpec{
			{Name: "serve", Short: "run the server"},
			{Name: "check", Short: "verify configuration"},
		},
	}
	pages, err := Formatter{Date: "2026-01-01"}.Pages(spec)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "prog.1", pages[0].Name)
	assert.Equal(t, "prog-serve.1", pages[1].Name)
	assert.Equal(t, "prog-check.1", pages[2].Name)
	root := string(pages[0].Content)
	assert.Contains(t, root, ".SH COMMANDS")
	assert.Contains(t, root, `See \fBprog\-serve\fP(1).`)
	assert.Contains(t, string(pages[1].Content), `.TH "prog\-serve"`)
}

func TestPagesAbortOnEmptySubcommand(t *testing.T) {
	spec := &ProgramSpec{
		Name:     "prog",
		Short:    "top level",
		Commands: []*ProgramSpec{{Name: "hollow"}},
	}
	pages, err := Formatter{}.Pages(spec)
	var empty *EmptyProgramSpecError
	require.ErrorAs(t, err, &empty)
	assert.Nil(t, pages)
}

func TestSectionInHeaderAndFilename(t *testing.T) {
	pages, err := Formatter{Section: 8, Date: "2026-01-01"}.Pages(&ProgramSpec{Name: "daemon", Short: "runs"})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "daemon.8", pages[0].Name)
	assert.Contains(t, string(pages[0].Content), `.TH "daemon" 8 2026-01-01`)
}
