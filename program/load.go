package program

import (
	"io/fs"
	"slices"
	"strings"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/overload"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/parser"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// TypeDecl declares one named type. Name is the full name (Geo::Point); the
// containers it mentions must be declared too.
type TypeDecl struct {
	Name    string   `yaml:"name"`
	Module  bool     `yaml:"module,omitempty"`
	Params  []string `yaml:"params,omitempty"`
	Parents []string `yaml:"parents,omitempty"`
}

// MethodDecl declares the overloads of one method. Owner names the receiver
// type the overloads are declared in, for self and relative names; an empty
// Owner declares top-level methods. Overloads of one name share the owner of
// its first declaration.
type MethodDecl struct {
	Name      string   `yaml:"name"`
	Owner     string   `yaml:"owner,omitempty"`
	Overloads []string `yaml:"overloads"`
}

// Description is the YAML form of a Program
type Description struct {
	Types   []TypeDecl   `yaml:"types"`
	Methods []MethodDecl `yaml:"methods,omitempty"`
}

// Load reads the program description at path in fsys
func Load(fsys fs.FS, path string) (*Program, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read program %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load program %s", path)
	}
	return p, nil
}

// Parse decodes a YAML program description and builds the Program it
// describes
func Parse(data []byte) (*Program, error) {
	var desc Description
	if err := yaml.UnmarshalWithOptions(data, &desc, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Wrap(err, "invalid program description")
	}
	return Build(desc)
}

// Build creates the Program for desc. Declarations may appear in any order;
// every problem found is reported together.
func Build(desc Description) (*Program, error) {
	b := &builder{
		program:  newProgram(),
		decls:    make(map[string]TypeDecl, len(desc.Types)),
		visiting: set.New[string](len(desc.Types)),
	}

	for _, decl := range desc.Types {
		if _, exists := b.decls[decl.Name]; exists {
			b.errs = b.errs.With(ilerr.New(ilerr.NewDuplicateType{Positioner: ast.Range{}, Name: decl.Name}))
			continue
		}
		b.decls[decl.Name] = decl
	}
	for _, decl := range desc.Types {
		b.define(decl.Name)
	}
	if b.errs.HasError() {
		programLogger.Warn("program has errors", "errors", b.errs)
		return nil, b.errs
	}

	for _, method := range desc.Methods {
		b.declareMethod(method)
	}
	if b.errs.HasError() {
		programLogger.Warn("program has errors", "errors", b.errs)
		return nil, b.errs
	}
	programLogger.Debug("program built", "types", len(b.program.order), "methods", len(b.program.methodOrder))
	return b.program, nil
}

type builder struct {
	program  *Program
	decls    map[string]TypeDecl
	errs     *ilerr.Errors
	visiting *set.Set[string]
	// path is the chain of declarations being defined, to report cycles
	path []string
}

// define creates the type declared under fullName after its container and
// parents, and returns it. It returns nil if the declaration or one of its
// dependencies is broken.
func (b *builder) define(fullName string) *types.NamedType {
	if t, ok := b.program.types[fullName]; ok {
		return t
	}
	decl, ok := b.decls[fullName]
	if !ok {
		return nil
	}
	if b.visiting.Contains(fullName) {
		cycle := append(slices.Clone(b.path[indexOf(b.path, fullName):]), fullName)
		b.errs = b.errs.With(ilerr.New(ilerr.NewCyclicHierarchy{Positioner: ast.Range{}, Cycle: cycle}))
		return nil
	}
	b.visiting.Insert(fullName)
	b.path = append(b.path, fullName)
	defer func() {
		b.visiting.Remove(fullName)
		b.path = b.path[:len(b.path)-1]
	}()

	var container *types.NamedType
	names := strings.Split(fullName, "::")
	if len(names) > 1 {
		containerName := strings.Join(names[:len(names)-1], "::")
		if container = b.define(containerName); container == nil {
			if _, declared := b.decls[containerName]; !declared {
				b.errs = b.errs.With(ilerr.New(ilerr.NewUnknownType{Positioner: ast.Range{}, Name: containerName}))
			}
			return nil
		}
	}
	name := names[len(names)-1]

	parents := make([]*types.NamedType, 0, len(decl.Parents))
	for _, src := range decl.Parents {
		parent := b.parent(src, container)
		if parent == nil {
			return nil
		}
		parents = append(parents, parent)
	}

	var t *types.NamedType
	switch {
	case decl.Module:
		t = types.NewModule(name, container)
	case len(decl.Params) > 0:
		t = types.NewGeneric(name, container, decl.Params, parents...)
	default:
		t = types.NewClass(name, container, parents...)
	}
	b.program.add(t)
	return t
}

// parent resolves a parent type expression written inside container,
// defining whatever it names first
func (b *builder) parent(src string, container *types.NamedType) *types.NamedType {
	term, err := parser.ParseTerm(src)
	if err != nil {
		b.errs = b.errs.With(asIleError(err))
		return nil
	}
	for _, name := range b.dependencies(term, container) {
		if b.define(name) == nil && b.errs.HasError() {
			return nil
		}
	}

	t, err := b.scopeIn(container).ResolveTerm(term)
	if err != nil {
		b.errs = b.errs.With(asIleError(err))
		return nil
	}
	named, ok := t.(*types.NamedType)
	if !ok {
		b.errs = b.errs.With(ilerr.New(ilerr.NewSyntax{
			Positioner:    term.Range,
			ParserMessage: "parent '" + src + "' must name a class, not a " + kindOf(t),
		}))
		return nil
	}
	return named
}

// dependencies lists the declarations a term may refer to from container,
// innermost namespace first
func (b *builder) dependencies(term *parser.Term, container *types.NamedType) []string {
	var deps []string
	var walk func(*parser.Term)
	walk = func(t *parser.Term) {
		for _, alt := range t.Alts {
			walk(alt)
		}
		for _, arg := range t.Args {
			walk(arg)
		}
		if t.Self || t.IsUnion() {
			return
		}
		name := strings.Join(t.Names, "::")
		if !t.Global {
			for ns := container; ns != nil; ns = ns.Container() {
				if candidate := ns.FullName() + "::" + name; b.isDeclared(candidate) {
					deps = append(deps, candidate)
					return
				}
			}
		}
		deps = append(deps, name)
	}
	walk(term)
	return deps
}

// scopeIn returns the scope names inside container are resolved in
func (b *builder) scopeIn(container *types.NamedType) *Scope {
	if container == nil {
		return b.program.Scope(nil)
	}
	return b.program.Scope(container)
}

func (b *builder) isDeclared(fullName string) bool {
	_, ok := b.decls[fullName]
	return ok
}

func (b *builder) declareMethod(decl MethodDecl) {
	scope, err := b.program.ReceiverScope(decl.Owner)
	if err != nil {
		b.errs = b.errs.With(asIleError(err))
		return
	}

	s, ok := b.program.methods[decl.Name]
	if !ok {
		s = overload.NewSet(decl.Name, scope, b.program)
		b.program.methods[decl.Name] = s
		b.program.methodScopes[decl.Name] = scope
		b.program.methodOrder = append(b.program.methodOrder, decl.Name)
	} else if first := b.program.methodScopes[decl.Name]; receiverName(first) != receiverName(scope) {
		b.errs = b.errs.With(ilerr.New(ilerr.NewConflictingReceiver{
			Positioner: ast.Range{},
			Method:     decl.Name,
			First:      receiverName(first),
			Conflict:   receiverName(scope),
		}))
		return
	}
	for _, src := range decl.Overloads {
		def, err := parser.ParseSignature(decl.Name, src)
		if err != nil {
			b.errs = b.errs.With(asIleError(err))
			continue
		}
		if replaced := s.Add(def); replaced != nil {
			programLogger.Warn("overload redefined", "method", decl.Name, "signature", src)
		}
	}
}

// receiverName is how a method's receiver is written, empty at the top level
func receiverName(s *Scope) string {
	if types.IsNil(s.self) {
		return ""
	}
	return s.self.String()
}

func kindOf(t types.Type) string {
	switch t.(type) {
	case *types.UnionType:
		return "union"
	case *types.HierarchyType:
		return "hierarchy type"
	case *types.SelfType:
		return "self type"
	default:
		return "named type"
	}
}

func asIleError(err error) ilerr.IleError {
	var ileErr ilerr.IleError
	if errors.As(err, &ileErr) {
		return ileErr
	}
	return ilerr.New(ilerr.Unclassified{From: err, Positioner: ast.Range{}})
}

func indexOf(path []string, name string) int {
	return max(slices.Index(path, name), 0)
}
