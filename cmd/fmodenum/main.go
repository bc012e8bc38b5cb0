// Command fmodenum writes member tables for integer enumerations.
//
// For every named type given with -type it emits
//
//	func <Type>Members() []<Type>
//
// returning each constant of that type in declaration order. equiv.Declare
// takes these functions, so adding a constant to an enumeration and
// rerunning go generate is enough to have it checked against its
// counterpart.
//
// Usage (from a go:generate line):
//
//	fmodenum -type=TimeUnit,Mode [-output=zz_members.go] [dir]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	typeList := flag.String("type", "", "comma-separated list of enumeration type names; required")
	output := flag.String("output", "zz_members.go", "output file name, relative to the package directory")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -type=T[,T...] [-output=file] [dir]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *typeList == "" {
		flag.Usage()
		os.Exit(2)
	}
	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := run(dir, strings.Split(*typeList, ","), *output); err != nil {
		fmt.Fprintf(os.Stderr, "fmodenum: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, typeNames []string, output string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedFiles,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("load package: %w", err)
	}
	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return fmt.Errorf("expected one package in %s", dir)
	}
	pkg := pkgs[0]

	src, err := generate(pkg.Fset, pkg.Syntax, pkg.Types, typeNames)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, output), src, 0o644)
}

// generate returns the formatted member-table file for typeNames.
func generate(fset *token.FileSet, files []*ast.File, pkg *types.Package, typeNames []string) ([]byte, error) {
	var (
		body     bytes.Buffer
		buildTag string
	)
	for i, name := range typeNames {
		name = strings.TrimSpace(name)
		named, members, err := collect(fset, pkg, name)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("type %s has no constants", name)
		}
		if i == 0 {
			buildTag = buildConstraint(fset, files, named.Obj().Pos())
		}

		fmt.Fprintf(&body, "\n// %sMembers returns every declared %s constant.\n", name, name)
		fmt.Fprintf(&body, "func %sMembers() []%s {\n\treturn []%s{\n", name, name, name)
		for _, m := range members {
			fmt.Fprintf(&body, "\t\t%s,\n", m)
		}
		body.WriteString("\t}\n}\n")
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by fmodenum -type=%s; DO NOT EDIT.\n\n", strings.Join(typeNames, ","))
	if buildTag != "" {
		fmt.Fprintf(&out, "%s\n\n", buildTag)
	}
	fmt.Fprintf(&out, "package %s\n", pkg.Name())
	out.Write(body.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	return src, nil
}

// collect returns the named type and the names of its constants in
// declaration order.
func collect(fset *token.FileSet, pkg *types.Package, typeName string) (*types.Named, []string, error) {
	obj, ok := pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("type %s not found in package %s", typeName, pkg.Name())
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("%s is not a named type", typeName)
	}
	if basic, ok := named.Underlying().(*types.Basic); !ok || basic.Info()&types.IsInteger == 0 {
		return nil, nil, fmt.Errorf("%s is not an integer type", typeName)
	}

	var consts []*types.Const
	scope := pkg.Scope()
	for _, n := range scope.Names() {
		c, ok := scope.Lookup(n).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			consts = append(consts, c)
		}
	}
	sort.Slice(consts, func(i, j int) bool {
		pi, pj := fset.Position(consts[i].Pos()), fset.Position(consts[j].Pos())
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		return pi.Offset < pj.Offset
	})

	names := make([]string, len(consts))
	for i, c := range consts {
		names[i] = c.Name()
	}
	return named, names, nil
}

// buildConstraint returns the //go:build line of the file containing pos.
func buildConstraint(fset *token.FileSet, files []*ast.File, pos token.Pos) string {
	filename := fset.Position(pos).Filename
	for _, f := range files {
		if fset.Position(f.Pos()).Filename != filename {
			continue
		}
		for _, group := range f.Comments {
			if group.End() >= f.Package {
				break
			}
			for _, c := range group.List {
				if strings.HasPrefix(c.Text, "//go:build ") {
					return c.Text
				}
			}
		}
	}
	return ""
}
