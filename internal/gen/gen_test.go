package gen

import (
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"
	"golang.org/x/tools/go/packages"
)

type GenTestSuite struct {
	suite.Suite
}

func newFlags(args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("proxygen", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("dir", "", "")
	flags.String("pattern", "", "")
	flags.String("output", "", "")
	flags.StringArray("proxy", nil, "")
	flags.IntP("verbose", "v", 0, "")
	if err := flags.Parse(args); err != nil {
		panic(err)
	}
	return flags
}

func (suite *GenTestSuite) writeConfig(yaml string) string {
	path := filepath.Join(suite.T().TempDir(), "proxies.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func (suite *GenTestSuite) TestParseProxy() {
	suite.Run("Valid", func() {
		p, err := ParseProxy(" EchoProxy = Echo, io.Closer ,")
		suite.Require().NoError(err)
		suite.Equal(Proxy{"EchoProxy", []string{"Echo", "io.Closer"}}, p)
	})

	suite.Run("Invalid", func() {
		for _, spec := range []string{"", "EchoProxy", "=Echo", "EchoProxy=", "EchoProxy= , "} {
			_, err := ParseProxy(spec)
			suite.ErrorIs(err, ErrInvalidProxyFlag, spec)
		}
	})
}

func (suite *GenTestSuite) TestLoadConfig() {
	suite.Run("File", func() {
		path := suite.writeConfig(`
output: a_gen.go
proxies:
  - name: A
    contracts: [Echo]
`)
		cfg, err := LoadConfig(path, nil)
		suite.Require().NoError(err)
		suite.Equal(Config{
			Dir:     ".",
			Pattern: ".",
			Output:  "a_gen.go",
			Proxies: []Proxy{{"A", []string{"Echo"}}},
		}, cfg)
	})

	suite.Run("Flags Override File", func() {
		path := suite.writeConfig(`
output: a_gen.go
verbose: 1
proxies:
  - name: A
    contracts: [Echo]
`)
		cfg, err := LoadConfig(path, newFlags(
			"--output", "b_gen.go", "--dir", "pkg", "--proxy", "B=Echo,Joiner"))
		suite.Require().NoError(err)
		want := Config{
			Dir:     "pkg",
			Pattern: ".",
			Output:  "b_gen.go",
			Verbose: 1,
			Proxies: []Proxy{
				{"A", []string{"Echo"}},
				{"B", []string{"Echo", "Joiner"}},
			},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			suite.Fail("unexpected config", diff)
		}
	})

	suite.Run("Flags Only", func() {
		cfg, err := LoadConfig("", newFlags("-v", "2", "--proxy", "A=Echo"))
		suite.Require().NoError(err)
		suite.Equal(2, cfg.Verbose)
		suite.Equal("proxy_gen.go", cfg.Output)
		suite.Len(cfg.Proxies, 1)
	})

	suite.Run("Rejects", func() {
		suite.Run("Missing File", func() {
			_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "none.yaml"), nil)
			suite.Error(err)
		})

		suite.Run("No Proxies", func() {
			_, err := LoadConfig("", newFlags())
			suite.ErrorContains(err, "Proxies")
		})

		suite.Run("Bad Proxy Flag", func() {
			_, err := LoadConfig("", newFlags("--proxy", "A"))
			suite.ErrorIs(err, ErrInvalidProxyFlag)
		})

		suite.Run("Duplicate Proxy", func() {
			_, err := LoadConfig("", newFlags("--proxy", "A=Echo", "--proxy", "A=Joiner"))
			suite.ErrorContains(err, `duplicate proxy "A"`)
		})

		suite.Run("Missing Contracts", func() {
			path := suite.writeConfig(`
proxies:
  - name: A
`)
			_, err := LoadConfig(path, nil)
			suite.ErrorContains(err, "Contracts")
		})
	})
}

func (suite *GenTestSuite) TestQualifier() {
	f := &source{
		pkg:     types.NewPackage("example.com/app", "app"),
		imports: map[string]string{proxyImport: "proxy"},
		names:   map[string]string{"proxy": proxyImport},
		renamed: map[string]bool{},
	}
	suite.Equal("", f.qualifier(f.pkg))
	suite.Equal("log", f.qualifier(types.NewPackage("example.com/a/log", "log")))
	suite.Equal("log2", f.qualifier(types.NewPackage("example.com/b/log", "log")))
	suite.Equal("log", f.qualifier(types.NewPackage("example.com/a/log", "log")))
	suite.Equal("proxy2", f.qualifier(types.NewPackage("example.com/other/proxy", "proxy")))
	suite.Equal("context", f.qualifier(types.NewPackage("context", "context")))

	std, other := f.importSpecs()
	suite.Equal([]string{`"context"`}, std)
	suite.Equal([]string{
		`"example.com/a/log"`,
		`log2 "example.com/b/log"`,
		`proxy2 "example.com/other/proxy"`,
		`"github.com/miruken-go/proxy"`,
	}, other)
}

// greeterStub builds a stub for an interface declared as
//
//	type Greeter interface {
//		Greet(name string, extra ...string) (string, error)
//		Reset()
//	}
func greeterStub() (*types.Package, *stub) {
	pkg    := types.NewPackage("example.com/app", "app")
	str    := types.Typ[types.String]
	errTyp := types.Universe.Lookup("error").Type()
	greet  := types.NewFunc(token.NoPos, pkg, "Greet", types.NewSignatureType(
		nil, nil, nil,
		types.NewTuple(
			types.NewVar(token.NoPos, pkg, "name", str),
			types.NewVar(token.NoPos, pkg, "extra", types.NewSlice(str))),
		types.NewTuple(
			types.NewVar(token.NoPos, pkg, "", str),
			types.NewVar(token.NoPos, pkg, "", errTyp)),
		true))
	reset := types.NewFunc(token.NoPos, pkg, "Reset",
		types.NewSignatureType(nil, nil, nil, nil, nil, false))
	iface := types.NewInterfaceType([]*types.Func{greet, reset}, nil).Complete()
	obj   := types.NewTypeName(token.NoPos, pkg, "Greeter", nil)
	named := types.NewNamed(obj, iface, nil)
	pkg.Scope().Insert(obj)

	c := &contract{"Greeter", named, iface}
	s := &stub{name: "GreeterProxy", contracts: []*contract{c}}
	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		s.methods = append(s.methods, &method{fn.Name(), fn.Type().(*types.Signature), c})
	}
	return pkg, s
}

func (suite *GenTestSuite) TestRender() {
	pkg, s := greeterStub()
	src, err := render(pkg, "greeter_gen.go", []*stub{s})
	suite.Require().NoError(err)

	code := string(src)
	suite.True(strings.HasPrefix(code, "// Code generated by proxygen. DO NOT EDIT."))
	for _, fragment := range []string{
		"package app",
		"type GreeterProxy struct{ proxy.Stub }",
		"func (p *GreeterProxy) Greet(a0 string, a1 ...string) (string, error) {",
		`out, err := p.Stub.Dispatch("Greet", a0, a1)`,
		"r0, _ := out[0].(string)",
		"return r0, err",
		"func (p *GreeterProxy) Reset() {",
		`p.Stub.Dispatch("Reset")`,
		"reflect.TypeFor[Greeter]()",
	} {
		suite.Contains(code, fragment)
	}

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, "greeter_gen.go", src, parser.ImportsOnly)
	suite.Require().NoError(err)
	var paths []string
	for _, imp := range parsed.Imports {
		paths = append(paths, imp.Path.Value)
	}
	suite.Equal([]string{`"reflect"`, `"github.com/miruken-go/proxy"`}, paths)
}

func (suite *GenTestSuite) TestResolveStub() {
	pkg, greeter := greeterStub()
	str   := types.Typ[types.String]
	greet := types.NewFunc(token.NoPos, pkg, "Greet", types.NewSignatureType(
		nil, nil, nil,
		types.NewTuple(types.NewVar(token.NoPos, pkg, "name", str)), nil, false))
	iface := types.NewInterfaceType([]*types.Func{greet}, nil).Complete()
	obj   := types.NewTypeName(token.NoPos, pkg, "Other", nil)
	types.NewNamed(obj, iface, nil)
	pkg.Scope().Insert(obj)
	loaded := &packages.Package{Types: pkg}

	suite.Run("Removes Duplicates", func() {
		s, err := resolveStub(loaded, Proxy{"GreeterProxy", []string{"Greeter", "Greeter"}})
		suite.Require().NoError(err)
		suite.Len(s.contracts, 1)
		suite.Len(s.methods, len(greeter.methods))
	})

	suite.Run("Conflicting Methods", func() {
		_, err := resolveStub(loaded, Proxy{"Both", []string{"Greeter", "Other"}})
		suite.ErrorIs(err, ErrConflictingMethod)
	})

	suite.Run("Missing Contracts", func() {
		_, err := resolveStub(loaded, Proxy{"Missing", []string{"Nothing", "fmt.Stringer"}})
		suite.ErrorIs(err, ErrContractNotFound)
		suite.ErrorContains(err, `package "fmt" not imported`)
	})
}

func (suite *GenTestSuite) TestSource() {
	if testing.Short() {
		suite.T().Skip("loads packages with the go command")
	}
	cfg, err := LoadConfig("../../test/proxies.yaml", nil)
	suite.Require().NoError(err)
	cfg.Dir = "../../test"

	path, src, err := New(cfg, logr.Discard()).Source()
	suite.Require().NoError(err)
	suite.Equal("proxy_gen.go", filepath.Base(path))

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, path, src, 0)
	suite.Require().NoError(err)
	suite.Equal("test", parsed.Name.Name)
	for _, p := range cfg.Proxies {
		suite.Contains(string(src), "type "+p.Name+" struct{ proxy.Stub }")
	}
	suite.Contains(string(src), "reflect.TypeFor[Fetcher](), reflect.TypeFor[io.Closer]()")
	suite.Contains(string(src), "func (p *FormatterProxy) Format(a0 string, a1 ...any) string {")
}

func (suite *GenTestSuite) TestSourceRejects() {
	if testing.Short() {
		suite.T().Skip("loads packages with the go command")
	}
	for _, p := range []Proxy{
		{"Missing", []string{"Nothing"}},
		{"Concrete", []string{"Item"}},
		{"Unimported", []string{"net.Conn"}},
	} {
		cfg := Defaults
		cfg.Dir = "../../test"
		cfg.Proxies = []Proxy{p}
		_, _, err := New(cfg, logr.Discard()).Source()
		suite.Error(err, p.Name)
	}
}

func TestGenTestSuite(t *testing.T) {
	suite.Run(t, new(GenTestSuite))
}
