package gen

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/tools/go/packages"
)

type (
	// contract is an interface resolved from the loaded package.
	contract struct {
		expr  string // as written in the target package
		named *types.Named
		iface *types.Interface
	}

	// method is a method of a stub.
	// The first contract declaring a method wins.
	method struct {
		name     string
		sig      *types.Signature
		contract *contract
	}

	// stub is a resolved Proxy.
	stub struct {
		name      string
		contracts []*contract
		methods   []*method
	}
)

var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrNotInterface      = errors.New("contract must be an interface")
	ErrGenericContract   = errors.New("generic contracts must be instantiated")
	ErrUnexportedMethod  = errors.New("contract has unexported methods")
	ErrConflictingMethod = errors.New("methods with the same name have different signatures")
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// loadPackage loads the single package matching pattern.
func loadPackage(dir, pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Dir: dir}, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load %q: expected one package but found %d", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		var errs error
		for _, e := range pkg.Errors {
			errs = multierror.Append(errs, e)
		}
		return nil, fmt.Errorf("load %q: %w", pattern, errs)
	}
	return pkg, nil
}

// resolveStub resolves the contracts and methods of a Proxy.
func resolveStub(pkg *packages.Package, proxy Proxy) (*stub, error) {
	s := &stub{name: proxy.Name}
	var invalid error
	seen := make(map[*types.Named]bool)
	for _, expr := range proxy.Contracts {
		c, err := resolveContract(pkg, expr)
		if err != nil {
			invalid = multierror.Append(invalid, err)
			continue
		}
		if seen[c.named] {
			continue
		}
		seen[c.named] = true
		s.contracts = append(s.contracts, c)
	}
	if invalid != nil {
		return nil, fmt.Errorf("proxy %s: %w", proxy.Name, invalid)
	}

	byName := make(map[string]*method)
	for _, c := range s.contracts {
		for i := 0; i < c.iface.NumMethods(); i++ {
			fn := c.iface.Method(i)
			if !fn.Exported() {
				invalid = multierror.Append(invalid,
					fmt.Errorf("%s %q: %w", c.expr, fn.Name(), ErrUnexportedMethod))
				continue
			}
			sig := fn.Type().(*types.Signature)
			if first, ok := byName[fn.Name()]; ok {
				if !types.Identical(first.sig, sig) {
					invalid = multierror.Append(invalid,
						fmt.Errorf("%s %q: %w", c.expr, fn.Name(), ErrConflictingMethod))
				}
				continue
			}
			m := &method{fn.Name(), sig, c}
			byName[m.name] = m
			s.methods = append(s.methods, m)
		}
	}
	if invalid != nil {
		return nil, fmt.Errorf("proxy %s: %w", proxy.Name, invalid)
	}
	return s, nil
}

// resolveContract finds an interface by name in the package
// or by pkg.Name in one of its imports.
func resolveContract(pkg *packages.Package, expr string) (*contract, error) {
	scope := pkg.Types.Scope()
	name  := expr
	if dot := strings.LastIndex(expr, "."); dot >= 0 {
		qual := expr[:dot]
		scope = nil
		name  = expr[dot+1:]
		for _, imp := range pkg.Types.Imports() {
			if imp.Name() == qual || imp.Path() == qual {
				scope = imp.Scope()
				break
			}
		}
		if scope == nil {
			return nil, fmt.Errorf("%s: package %q not imported: %w",
				expr, qual, ErrContractNotFound)
		}
	}
	obj, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", expr, ErrContractNotFound)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s: %w", expr, ErrNotInterface)
	}
	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%s: %w", expr, ErrGenericContract)
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%s: %w", expr, ErrNotInterface)
	}
	if !iface.IsMethodSet() {
		return nil, fmt.Errorf("%s: constraint interfaces cannot be proxied: %w",
			expr, ErrNotInterface)
	}
	return &contract{expr, named, iface}, nil
}
