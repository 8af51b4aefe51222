package gen

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/xraph/berth"
)

const directivePrefix = "berth:"

const (
	directiveImplementation = "implementation"
	directiveContract       = "contract"
	directiveBase           = "base"
)

// Parse reads the non-test, non-generated Go files of dir and collects their
// berth directives. Every malformed directive is reported; the errors are
// combined with multierr.
func Parse(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	p := &parser{
		fset: token.NewFileSet(),
		pkg: &Package{
			Dir:     dir,
			Imports: make(map[string]string),
		},
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		p.parseFile(filepath.Join(dir, name))
	}

	if p.err != nil {
		return nil, p.err
	}

	if p.pkg.Name == "" {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	return p.pkg, nil
}

type parser struct {
	fset *token.FileSet
	pkg  *Package
	err  error

	// imports of the file being parsed, by local name
	imports map[string]string
}

func (p *parser) errorf(pos token.Pos, typeName, format string, args ...any) {
	p.err = multierr.Append(p.err, fmt.Errorf("%s: %w",
		p.fset.Position(pos), berth.ErrInvalidDeclaration(typeName, fmt.Sprintf(format, args...))))
}

func (p *parser) parseFile(filename string) {
	file, err := goparser.ParseFile(p.fset, filename, nil, goparser.ParseComments)
	if err != nil {
		p.err = multierr.Append(p.err, err)
		return
	}

	if ast.IsGenerated(file) {
		return
	}

	switch {
	case p.pkg.Name == "":
		p.pkg.Name = file.Name.Name
	case p.pkg.Name != file.Name.Name:
		p.err = multierr.Append(p.err, fmt.Errorf("%s: package %s, expected %s",
			p.fset.Position(file.Name.Pos()), file.Name.Name, p.pkg.Name))
		return
	}

	p.imports = fileImports(file)

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				p.rejectDirectives(decl.Doc, decl.Tok.String())
				continue
			}

			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(decl.Specs) == 1 {
					doc = decl.Doc
				}

				p.parseType(ts, doc)
			}
		case *ast.FuncDecl:
			p.rejectDirectives(decl.Doc, "func "+decl.Name.Name)
		}
	}
}

func (p *parser) rejectDirectives(doc *ast.CommentGroup, what string) {
	for _, d := range directives(doc) {
		p.errorf(d.pos, what, "//berth:%s is only allowed on type declarations", d.name)
	}
}

func (p *parser) parseType(ts *ast.TypeSpec, doc *ast.CommentGroup) {
	name := ts.Name.Name

	var impl *Implementation
	marked := false

	for _, d := range directives(doc) {
		if ts.TypeParams != nil {
			p.errorf(d.pos, name, "generic types cannot be declared")
			return
		}

		_, isInterface := ts.Type.(*ast.InterfaceType)

		switch d.name {
		case directiveContract:
			if !isInterface {
				p.errorf(d.pos, name, "//berth:contract requires an interface type")
				continue
			}

			if len(d.args) > 0 {
				p.errorf(d.pos, name, "//berth:contract takes no arguments")
				continue
			}

			p.pkg.Contracts = append(p.pkg.Contracts, name)

		case directiveImplementation:
			if isInterface {
				p.errorf(d.pos, name, "an interface cannot be an implementation")
				continue
			}

			marked = true
			if impl == nil {
				impl = &Implementation{Name: name}
			}

			if marker, ok := p.parseMarker(d, impl); ok {
				impl.Markers = append(impl.Markers, marker)
			}

		case directiveBase:
			if len(d.args) != 1 {
				p.errorf(d.pos, name, "//berth:base takes exactly one type")
				continue
			}

			if !p.checkTypeExpr(d.pos, name, d.args[0]) {
				continue
			}

			if impl == nil {
				impl = &Implementation{Name: name}
			}

			impl.Bases = append(impl.Bases, d.args[0])

		default:
			p.errorf(d.pos, name, "unknown directive //berth:%s", d.name)
		}
	}

	if impl == nil {
		return
	}

	if !marked {
		p.errorf(ts.Pos(), name, "//berth:base without //berth:implementation")
		return
	}

	if len(impl.Markers) == 0 {
		return
	}

	p.pkg.Implementations = append(p.pkg.Implementations, impl)
}

func (p *parser) parseMarker(d directive, impl *Implementation) (MarkerSpec, bool) {
	marker := MarkerSpec{Lifetime: berth.Scoped}
	ok := true

	for _, arg := range d.args {
		key, value, hasValue := strings.Cut(arg, "=")

		switch {
		case key == "as" && hasValue:
			if !p.checkTypeExpr(d.pos, impl.Name, value) {
				ok = false
				continue
			}
			marker.Contract = value

		case key == "lifetime" && hasValue:
			lifetime, err := berth.ParseLifetime(value)
			if err != nil {
				p.errorf(d.pos, impl.Name, "unknown lifetime %q", value)
				ok = false
				continue
			}
			marker.Lifetime = lifetime

		case key == "value" && !hasValue:
			impl.Value = true

		default:
			p.errorf(d.pos, impl.Name, "unknown argument %q", arg)
			ok = false
		}
	}

	return marker, ok
}

// checkTypeExpr accepts Name, pkg.Name and their pointer forms, recording the
// import behind pkg.
func (p *parser) checkTypeExpr(pos token.Pos, typeName, expr string) bool {
	parsed, err := goparser.ParseExpr(expr)
	if err != nil {
		p.errorf(pos, typeName, "invalid type %q", expr)
		return false
	}

	if star, ok := parsed.(*ast.StarExpr); ok {
		parsed = star.X
	}

	switch x := parsed.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		pkgIdent, ok := x.X.(*ast.Ident)
		if !ok {
			break
		}

		importPath, known := p.imports[pkgIdent.Name]
		if !known {
			p.errorf(pos, typeName, "package %s of %q is not imported", pkgIdent.Name, expr)
			return false
		}

		if existing, seen := p.pkg.Imports[pkgIdent.Name]; seen && existing != importPath {
			p.errorf(pos, typeName, "%s refers to both %s and %s", pkgIdent.Name, existing, importPath)
			return false
		}

		p.pkg.Imports[pkgIdent.Name] = importPath

		return true
	}

	p.errorf(pos, typeName, "invalid type %q", expr)

	return false
}

type directive struct {
	pos  token.Pos
	name string
	args []string
}

// directives returns the //berth: lines of doc in order.
func directives(doc *ast.CommentGroup) []directive {
	if doc == nil {
		return nil
	}

	var result []directive

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//"+directivePrefix)
		if !ok {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			fields = []string{""}
		}

		result = append(result, directive{
			pos:  c.Pos(),
			name: fields[0],
			args: fields[1:],
		})
	}

	return result
}

func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := defaultImportName(importPath)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		imports[name] = importPath
	}

	return imports
}
