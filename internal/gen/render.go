package gen

import (
	"bytes"
	"fmt"
	"go/types"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const proxyImport = "github.com/miruken-go/proxy"

type (
	// source collects the imports needed by the rendered stubs.
	source struct {
		pkg     *types.Package
		imports map[string]string // path -> name
		names   map[string]string // name -> path
		renamed map[string]bool   // path -> needs alias
	}

	stubView struct {
		Name      string
		Contracts []string
		Methods   []methodView
	}

	methodView struct {
		Name      string
		Contract  string
		Params    string
		Results   string
		Args      string
		Outs      []outView
		ReturnErr bool
	}

	outView struct {
		Var  string
		Type string
	}
)

var stubTemplate = template.Must(template.New("stubs").Parse(`// Code generated by proxygen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .StdImports}}
	{{.}}{{end}}
{{range .Imports}}
	{{.}}{{end}}
)
{{range .Stubs}}{{$stub := .}}
// {{.Name}} is a proxy stub for {{range $i, $c := .Contracts}}{{if $i}}, {{end}}{{$c}}{{end}}.
type {{.Name}} struct{ proxy.Stub }
{{range .Methods}}
// {{.Name}} implements {{.Contract}}.
func (p *{{$stub.Name}}) {{.Name}}({{.Params}}) {{.Results}} {
	{{if or .Outs .ReturnErr}}{{if .Outs}}out{{else}}_{{end}}, {{if .ReturnErr}}err{{else}}_{{end}} := {{end}}p.Stub.Dispatch("{{.Name}}"{{.Args}})
{{- range $i, $o := .Outs}}
	{{$o.Var}}, _ := out[{{$i}}].({{$o.Type}})
{{- end}}
{{- if or .Outs .ReturnErr}}
	return {{range $i, $o := .Outs}}{{if $i}}, {{end}}{{$o.Var}}{{end}}{{if .ReturnErr}}{{if .Outs}}, {{end}}err{{end}}
{{- end}}
}
{{end}}{{end}}
func init() {
{{- range .Stubs}}
	proxy.Register(func(s proxy.Stub) any { return &{{.Name}}{s} },
		{{range $i, $c := .Contracts}}{{if $i}}, {{end}}reflect.TypeFor[{{$c}}](){{end}})
{{- end}}
}
`))

// render generates the formatted source of the stubs.
func render(pkg *types.Package, filename string, stubs []*stub) ([]byte, error) {
	f := &source{
		pkg:     pkg,
		imports: map[string]string{proxyImport: "proxy", "reflect": "reflect"},
		names:   map[string]string{"proxy": proxyImport, "reflect": "reflect"},
		renamed: map[string]bool{},
	}
	views := make([]stubView, 0, len(stubs))
	for _, s := range stubs {
		views = append(views, f.stubView(s))
	}
	std, other := f.importSpecs()
	var buf bytes.Buffer
	if err := stubTemplate.Execute(&buf, map[string]any{
		"Package":    pkg.Name(),
		"StdImports": std,
		"Imports":    other,
		"Stubs":      views,
	}); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w\n%s", err, buf.String())
	}
	return src, nil
}

func (f *source) stubView(s *stub) stubView {
	view := stubView{Name: s.name}
	for _, c := range s.contracts {
		view.Contracts = append(view.Contracts, f.typeString(c.named))
	}
	for _, m := range s.methods {
		view.Methods = append(view.Methods, f.methodView(m))
	}
	return view
}

func (f *source) methodView(m *method) methodView {
	view   := methodView{Name: m.name, Contract: f.typeString(m.contract.named)}
	sig    := m.sig
	params := sig.Params()
	var decl, args []string
	for i := 0; i < params.Len(); i++ {
		name := fmt.Sprintf("a%d", i)
		typ  := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			decl = append(decl, name+" ..."+f.typeString(typ.(*types.Slice).Elem()))
		} else {
			decl = append(decl, name+" "+f.typeString(typ))
		}
		args = append(args, name)
	}
	view.Params = strings.Join(decl, ", ")
	if len(args) > 0 {
		view.Args = ", " + strings.Join(args, ", ")
	}

	results := sig.Results()
	numOut  := results.Len()
	if numOut > 0 && isError(results.At(numOut-1).Type()) {
		view.ReturnErr = true
		numOut--
	}
	var outs []string
	for i := 0; i < numOut; i++ {
		typ := f.typeString(results.At(i).Type())
		view.Outs = append(view.Outs, outView{fmt.Sprintf("r%d", i), typ})
		outs = append(outs, typ)
	}
	if view.ReturnErr {
		outs = append(outs, "error")
	}
	switch len(outs) {
	case 0:
	case 1:
		view.Results = outs[0]
	default:
		view.Results = "(" + strings.Join(outs, ", ") + ")"
	}
	return view
}

// typeString renders a type relative to the generated file,
// adding imports as needed.
func (f *source) typeString(t types.Type) string {
	return types.TypeString(t, f.qualifier)
}

func (f *source) qualifier(pkg *types.Package) string {
	if pkg == f.pkg {
		return ""
	}
	if name, ok := f.imports[pkg.Path()]; ok {
		return name
	}
	name := pkg.Name()
	for i := 2; ; i++ {
		if _, taken := f.names[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s%d", pkg.Name(), i)
	}
	f.imports[pkg.Path()] = name
	f.names[name] = pkg.Path()
	f.renamed[pkg.Path()] = name != pkg.Name()
	return name
}

// importSpecs returns the sorted standard library and other
// import specs.
func (f *source) importSpecs() (std, other []string) {
	paths := make([]string, 0, len(f.imports))
	for path := range f.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		spec := strconv.Quote(path)
		if f.renamed[path] {
			spec = f.imports[path] + " " + spec
		}
		if first, _, _ := strings.Cut(path, "/"); strings.Contains(first, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	return
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}
