package manpager

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// A declaration file is the explicitly-registered alternative to
// introspecting code: the program ships a small YAML document describing
// its arguments, and generation becomes a pure data read.
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
type declFile struct {
	Program     string     `yaml:"program"`
	Description string     `yaml:"description"`
	Long        string     `yaml:"long"`
	Remarks     string     `yaml:"remarks"`
	Arguments   []declArg  `yaml:"arguments"`
	Commands    []declFile `yaml:"commands"`
}

type declArg struct {
	Name       string   `yaml:"name"`
	Aliases    []string `yaml:"aliases"`
	Positional bool     `yaml:"positional"`
	Value      bool     `yaml:"value"`
	Default    string   `yaml:"default"`
	Metavar    string   `yaml:"metavar"`
	Help       string   `yaml:"help"`
	Required   bool     `yaml:"required"`
}

// LoadFile reads a YAML declaration file into a Declaration. A missing
// file is a ModuleNotFoundError; malformed YAML or a declaration without
// a program name is an UnsupportedDeclarationError.
func LoadFile(path string) (Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ModuleNotFoundError{Module: path, Err: err}
		}
		return nil, err
	}
	return parseDecl(path, data)
}

func parseDecl(path string, data []byte) (Declaration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var root declFile
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, &UnsupportedDeclarationError{Module: path, Reason: err.Error()}
	}
	if root.Program == "" {
		return nil, &UnsupportedDeclarationError{Module: path, Reason: "missing program name"}
	}
	return &fileDecl{decl: root}, nil
}

type fileDecl struct {
	decl declFile
}

func (d *fileDecl) Describe() (string, string, string) {
	return d.decl.Program, d.decl.Description, d.decl.Long
}

func (d *fileDecl) Arguments() []ArgumentSpec {
	args := make([]ArgumentSpec, 0, len(d.decl.Arguments))
	for _, a := range d.decl.Arguments {
		aliases := a.Aliases
		if len(aliases) == 0 {
			aliases = []string{a.Name}
		}
		args = append(args, ArgumentSpec{
			Name:       a.Name,
			Aliases:    aliases,
			Positional: a.Positional,
			TakesValue: a.Value || a.Positional || a.Metavar != "" || a.Default != "",
			Default:    a.Default,
			Metavar:    a.Metavar,
			Help:       a.Help,
			Required:   a.Required,
		})
	}
	return args
}

func (d *fileDecl) Epilog() string { return d.decl.Remarks }

func (d *fileDecl) Subcommands() []Declaration {
	subs := make([]Declaration, 0, len(d.decl.Commands))
	for _, sub := range d.decl.Commands {
		subs = append(subs, &fileDecl{decl: sub})
	}
	return subs
}
