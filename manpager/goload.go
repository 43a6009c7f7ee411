package manpager

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// DefaultAttr is the conventional declaration reported when a package
// registers no flags and no explicit attribute was requested.
const DefaultAttr = "flag"

// LoadPackage introspects the Go package matching pattern without
// building or running it: the package sources are parsed and scanned
// for flag and pflag registration calls, which become the argument
// declarations. attr restricts the scan to registrations on the flag-set
// variable of that name; when empty, registrations on the flag and
// pflag command lines and on any flag-set variable all count.
//
// The program name is the package path's base, the NAME and DESCRIPTION
// text comes from the package documentation comment.
func LoadPackage(ctx context.Context, pattern, attr string) (Declaration, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedCompiledGoFiles | packages.NeedFiles |
			packages.NeedSyntax | packages.NeedModule,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, &ModuleNotFoundError{Module: pattern, Err: err}
	}
	if len(pkgs) == 0 {
		return nil, &ModuleNotFoundError{Module: pattern}
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, &ModuleNotFoundError{Module: pattern, Err: fmt.Errorf("%s", pkg.Errors[0])}
	}
	return introspectPackage(pkg, pattern, attr)
}

func introspectPackage(pkg *packages.Package, pattern, attr string) (Declaration, error) {
	module := pkg.PkgPath
	if module == "" {
		module = pattern
	}
	args, err := scanRegistrations(module, pkg.Syntax, attr)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		missing := attr
		if missing == "" {
			missing = DefaultAttr
		}
		return nil, &AttributeMissingError{Module: module, Attribute: missing}
	}
	short, long := packageDoc(pkg.Syntax)
	return &goDecl{
		name:  programName(pkg),
		short: short,
		long:  long,
		args:  args,
	}, nil
}

type goDecl struct {
	name  string
	short string
	long  string
	args  []ArgumentSpec
}

func (d *goDecl) Describe() (string, string, string) { return d.name, d.short, d.long }
func (d *goDecl) Arguments() []ArgumentSpec          { return d.args }
func (d *goDecl) Subcommands() []Declaration         { return nil }

func programName(pkg *packages.Package) string {
	if pkg.PkgPath != "" {
		return path.Base(pkg.PkgPath)
	}
	return pkg.Name
}

func packageDoc(files []*ast.File) (short, long string) {
	for _, file := range files {
		if file.Doc == nil {
			continue
		}
		text := strings.TrimSpace(file.Doc.Text())
		if text == "" {
			continue
		}
		if idx := strings.Index(text, ". "); idx >= 0 {
			return strings.TrimSpace(text[:idx+1]), strings.TrimSpace(text[idx+1:])
		}
		if idx := strings.Index(text, ".\n"); idx >= 0 {
			return strings.TrimSpace(text[:idx+1]), strings.TrimSpace(text[idx+1:])
		}
		return strings.ReplaceAll(text, "\n", " "), ""
	}
	return "", ""
}

// callShape describes the argument positions of one registration method.
// An index of -1 means the method takes no such argument.
type callShape struct {
	nameIdx  int
	shortIdx int
	defIdx   int
	usageIdx int
	boolean  bool
}

var registrationShapes = buildShapes()

func buildShapes() map[string]callShape {
	shapes := map[string]callShape{
		"Var":  {nameIdx: 1, shortIdx: -1, defIdx: -1, usageIdx: 2},
		"VarP": {nameIdx: 1, shortIdx: 2, defIdx: -1, usageIdx: 3},
	}
	kinds := []string{
		"Bool", "Int", "Int8", "Int16", "Int32", "Int64",
		"Uint", "Uint8", "Uint16", "Uint32", "Uint64",
		"Float32", "Float64", "String", "Duration",
		"StringSlice", "StringArray", "IntSlice",
	}
	for _, kind := range kinds {
		boolean := kind == "Bool"
		shapes[kind] = callShape{nameIdx: 0, shortIdx: -1, defIdx: 1, usageIdx: 2, boolean: boolean}
		shapes[kind+"Var"] = callShape{nameIdx: 1, shortIdx: -1, defIdx: 2, usageIdx: 3, boolean: boolean}
		shapes[kind+"P"] = callShape{nameIdx: 0, shortIdx: 1, defIdx: 2, usageIdx: 3, boolean: boolean}
		shapes[kind+"VarP"] = callShape{nameIdx: 1, shortIdx: 2, defIdx: 3, usageIdx: 4, boolean: boolean}
	}
	return shapes
}

func scanRegistrations(module string, files []*ast.File, attr string) ([]ArgumentSpec, error) {
	var args []ArgumentSpec
	var scanErr error
	for _, file := range files {
		ast.Inspect(file, func(node ast.Node) bool {
			if scanErr != nil {
				return false
			}
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			recv, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			shape, ok := registrationShapes[sel.Sel.Name]
			if !ok {
				return true
			}
			if attr != "" && recv.Name != attr {
				return true
			}
			if len(call.Args) <= shape.usageIdx {
				return true
			}
			arg, err := argFromCall(module, call, shape)
			if err != nil {
				// Method names like String collide with ordinary
				// code. A non-literal flag name only counts as a
				// declaration on a receiver we were pointed at.
				if attr != "" || recv.Name == "flag" || recv.Name == "pflag" {
					scanErr = err
					return false
				}
				return true
			}
			args = append(args, arg)
			return true
		})
		if scanErr != nil {
			return nil, scanErr
		}
	}
	return args, nil
}

func argFromCall(module string, call *ast.CallExpr, shape callShape) (ArgumentSpec, error) {
	name, ok := stringLit(call.Args[shape.nameIdx])
	if !ok {
		return ArgumentSpec{}, &UnsupportedDeclarationError{
			Module: module,
			Reason: "flag name is not a string literal",
		}
	}
	long := "--" + name
	if len(name) == 1 {
		long = "-" + name
	}
	aliases := make([]string, 0, 2)
	if shape.shortIdx >= 0 {
		if short, ok := stringLit(call.Args[shape.shortIdx]); ok && short != "" {
			aliases = append(aliases, "-"+short)
		}
	}
	aliases = append(aliases, long)
	def := ""
	if !shape.boolean && shape.defIdx >= 0 {
		def = literalText(call.Args[shape.defIdx])
	}
	help := ""
	if usage, ok := stringLit(call.Args[shape.usageIdx]); ok {
		help = usage
	}
	return ArgumentSpec{
		Name:       long,
		Aliases:    aliases,
		TakesValue: !shape.boolean,
		Default:    def,
		Help:       help,
	}, nil
}

func stringLit(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// literalText renders a default-value expression when it is simple
// enough to show in a manual page; anything computed comes back empty.
func literalText(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind == token.STRING {
			value, err := strconv.Unquote(e.Value)
			if err != nil {
				return ""
			}
			return value
		}
		return e.Value
	case *ast.Ident:
		if e.Name == "true" || e.Name == "false" {
			return e.Name
		}
	case *ast.UnaryExpr:
		if e.Op == token.SUB {
			if inner := literalText(e.X); inner != "" {
				return "-" + inner
			}
		}
	}
	return ""
}
