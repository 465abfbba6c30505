// Package vtablegen generates Go dispatch code for a C function table from a
// struct declaration.
//
// The declaration is a struct whose fields are func types, listed in the order
// of the native table. Every func takes the object handle as its first
// parameter. For such a struct the generator emits:
//
//   - slotCount, the number of fields
//   - a bind method on the struct that installs slot i into field i
//   - one method on the receiver type per exported field, which calls the
//     field with the receiver's handle prepended and returns its result
//
// The receiver type must have a field named handle holding the handle and a
// field named vt holding the declaration struct.
package vtablegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// NativeImportPath is the package providing Backend and Slot to generated
// code.
const NativeImportPath = "github.com/hsiuhsiu/spout-go/internal/native"

var (
	ErrTypeNotFound = errors.New("vtablegen: declaration type not found")
	ErrBadSlot      = errors.New("vtablegen: invalid slot")
)

// Config selects the declaration and the generated method set.
type Config struct {
	// Dir is the directory of the package holding the declaration.
	Dir string

	// Type is the name of the declaration struct.
	Type string

	// Recv is the name of the type that receives the generated methods.
	Recv string

	// Handle is the type expression of the first parameter of every slot,
	// for example "*Handle".
	Handle string

	// Output is the name of the generated file. It is excluded when
	// reading the package so a stale file cannot affect the result.
	Output string
}

// Param is one parameter group of a slot, as written in the declaration.
type Param struct {
	Names []string
	Type  string
}

// Slot is one function table entry.
type Slot struct {
	Index  int
	Name   string
	Doc    []string
	Params []Param // excluding the handle
	Result string  // empty for void
}

// Exported reports whether the slot gets a method.
func (s Slot) Exported() bool { return token.IsExported(s.Name) }

// Args returns the argument names of s in order.
func (s Slot) Args() []string {
	var args []string
	for _, p := range s.Params {
		args = append(args, p.Names...)
	}
	return args
}

// Package is a parsed declaration.
type Package struct {
	Name  string
	Slots []Slot
}

// Load reads the declaration described by cfg.
func Load(cfg Config) (*Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  cfg.Dir,
	}, ".")
	if err != nil {
		return nil, fmt.Errorf("vtablegen: load %s: %w", cfg.Dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("vtablegen: %s: expected one package, found %d", cfg.Dir, len(pkgs))
	}
	pkg := pkgs[0]

	for _, file := range pkg.Syntax {
		if filepath.Base(pkg.Fset.File(file.Pos()).Name()) == cfg.Output {
			continue
		}
		st := findStruct(file, cfg.Type)
		if st == nil {
			continue
		}
		slots, err := readSlots(pkg.Fset, st, cfg)
		if err != nil {
			return nil, err
		}
		return &Package{Name: pkg.Name, Slots: slots}, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrTypeNotFound, cfg.Type, cfg.Dir)
}

func findStruct(file *ast.File, name string) *ast.StructType {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Name.Name != name {
				continue
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	return nil
}

func readSlots(fset *token.FileSet, st *ast.StructType, cfg Config) ([]Slot, error) {
	var slots []Slot
	for _, field := range st.Fields.List {
		pos := fset.Position(field.Pos())
		ft, ok := field.Type.(*ast.FuncType)
		if !ok {
			return nil, fmt.Errorf("%w: %s: field is not a func", ErrBadSlot, pos)
		}
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%w: %s: embedded field", ErrBadSlot, pos)
		}
		params, err := readParams(ft, cfg.Handle)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadSlot, pos, err)
		}
		var result string
		if ft.Results != nil {
			if ft.Results.NumFields() > 1 {
				return nil, fmt.Errorf("%w: %s: more than one result", ErrBadSlot, pos)
			}
			result = types.ExprString(ft.Results.List[0].Type)
		}
		var doc []string
		if field.Doc != nil {
			for _, c := range field.Doc.List {
				doc = append(doc, c.Text)
			}
		}
		for _, name := range field.Names {
			slots = append(slots, Slot{
				Index:  len(slots),
				Name:   name.Name,
				Doc:    doc,
				Params: params,
				Result: result,
			})
		}
	}
	return slots, nil
}

func readParams(ft *ast.FuncType, handle string) ([]Param, error) {
	list := ft.Params.List
	if len(list) == 0 {
		return nil, fmt.Errorf("missing %s parameter", handle)
	}
	if got := types.ExprString(list[0].Type); got != handle {
		return nil, fmt.Errorf("first parameter is %s, want %s", got, handle)
	}

	var params []Param
	if len(list[0].Names) > 1 {
		params = append(params, Param{Names: idents(list[0].Names[1:]), Type: handle})
	}
	n := 0
	for _, f := range list[1:] {
		if _, ok := f.Type.(*ast.Ellipsis); ok {
			return nil, errors.New("variadic parameters cannot be passed to a native function")
		}
		p := Param{Type: types.ExprString(f.Type)}
		if len(f.Names) == 0 {
			p.Names = []string{fmt.Sprintf("arg%d", n)}
		} else {
			p.Names = idents(f.Names)
		}
		for _, name := range p.Names {
			switch name {
			case "s", "runtime":
				return nil, fmt.Errorf("parameter name %q collides with the generated method body", name)
			}
		}
		n += len(p.Names)
		params = append(params, p)
	}
	return params, nil
}

func idents(ids []*ast.Ident) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return names
}

// Generate returns the formatted source of the generated file for cfg.
func Generate(cfg Config) ([]byte, error) {
	pkg, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, struct {
		Config
		*Package
		Native string
	}{cfg, pkg, NativeImportPath})
	if err != nil {
		return nil, fmt.Errorf("vtablegen: %w", err)
	}
	src, err := imports.Process(cfg.Output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("vtablegen: format %s: %w", cfg.Output, err)
	}
	return src, nil
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"join": strings.Join,
	"params": func(ps []Param) string {
		s := make([]string, len(ps))
		for i, p := range ps {
			s[i] = strings.Join(p.Names, ", ") + " " + p.Type
		}
		return strings.Join(s, ", ")
	},
}).Parse(`// Code generated by vtablegen -type={{.Type}} -recv={{.Recv}}; DO NOT EDIT.

package {{.Name}}

import (
	"runtime"
	"unsafe"

	"{{.Native}}"
)

// slotCount is the number of function table slots declared by {{.Type}}.
const slotCount = {{len .Slots}}

// bind installs every function table slot into t in declaration order.
func (t *{{.Type}}) bind(b native.Backend, table unsafe.Pointer) {
{{- range .Slots}}
	b.Bind(&t.{{.Name}}, native.Slot(table, {{.Index}}))
{{- end}}
}
{{range .Slots}}{{if .Exported}}
{{- if .Doc}}
{{range .Doc}}{{.}}
{{end}}
{{- else}}
// {{.Name}} calls function table slot {{.Index}}.
{{end -}}
func (s *{{$.Recv}}) {{.Name}}({{params .Params}}){{with .Result}} {{.}}{{end}} {
	defer runtime.KeepAlive(s)
	{{if .Result}}return {{end}}s.vt.{{.Name}}(s.handle{{range .Args}}, {{.}}{{end}})
}
{{end}}{{end}}`))
