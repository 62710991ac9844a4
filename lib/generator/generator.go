package generator

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pthm/hxattrs"
)

// ImportPath is the import path of the package that declares Element.
const ImportPath = "github.com/pthm/hxattrs"

// DefaultSuffix is appended to a source file's base name to form the name
// of the file generated for it.
const DefaultSuffix = "_attrs.go"

// Options configures the generator.
type Options struct {
	// DryRun reports what would be written or removed without touching
	// the filesystem.
	DryRun bool
	// Suffix overrides DefaultSuffix.
	Suffix string
	// Logger receives one record per generated or removed file. Defaults
	// to slog.Default().
	Logger *slog.Logger
	// Debounce is how long Watch collects changes before regenerating.
	Debounce time.Duration
}

// Generator writes SpreadAttrs methods for props structs that embed
// hxattrs.Element.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{
		opts: opts,
		log:  log,
	}
}

// Generate generates code for the given package patterns. It stops at the
// first invalid omission directive and returns it as a *hxattrs.SchemaError
// positioned at the offending struct field.
func (g *Generator) Generate(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// Clean removes generated files for the given package patterns.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// findPackages resolves package patterns to directory paths. A pattern is
// a directory, a Go-style "dir/..." pattern or a doublestar glob such as
// "components/**".
func (g *Generator) findPackages(patterns []string) ([]string, error) {
	var packages []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !slices.Contains(packages, dir) && hasGoFiles(dir) {
			packages = append(packages, dir)
		}
	}

	for _, pattern := range patterns {
		if root, ok := strings.CutSuffix(pattern, "/..."); ok {
			if root == "" {
				root = "."
			}
			pattern = root + "/**"
		}

		if !strings.ContainsAny(pattern, "*?[{") {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, err
			}
			if !info.IsDir() {
				return nil, fmt.Errorf("%s: not a directory", pattern)
			}
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if filepath.Ext(m) != ".go" || skipDir(filepath.Dir(m)) {
				continue
			}
			add(filepath.Dir(m))
		}
	}

	return packages, nil
}

// skipDir reports whether any element of dir is hidden, vendor or testdata.
func skipDir(dir string) bool {
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") || strings.HasPrefix(part, "_") || part == "vendor" || part == "testdata" {
			return true
		}
	}
	return false
}

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && isSource(entry.Name()) {
			return true
		}
	}
	return false
}

// isSource reports whether name is a non-test Go file.
func isSource(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// generatePackage generates code for a single package.
func (g *Generator) generatePackage(pkgPath string) error {
	files, err := g.parseDir(pkgPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		props, err := g.findProps(file)
		if err != nil {
			return err
		}
		if len(props) == 0 {
			continue
		}
		if err := g.writeProps(file, props); err != nil {
			return err
		}
	}

	return nil
}

// sourceFile is a parsed Go file and the file set its positions refer to.
type sourceFile struct {
	Path    string
	Package string
	ast     *ast.File
	fset    *token.FileSet
}

func (g *Generator) parseDir(pkgPath string) ([]sourceFile, error) {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		return nil, err
	}

	// One file set per parse; Watch reparses for as long as it runs.
	fset := token.NewFileSet()
	var files []sourceFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isSource(name) || strings.HasSuffix(name, g.opts.Suffix) {
			continue
		}
		path := filepath.Join(pkgPath, name)
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		files = append(files, sourceFile{Path: path, Package: f.Name.Name, ast: f, fset: fset})
	}
	return files, nil
}

// PropsInfo describes a props struct that embeds hxattrs.Element.
type PropsInfo struct {
	TypeName string   // e.g. "ButtonProps"
	Omit     []string // canonical names from the omit directive
	Pos      string   // file:line of the embedded Element field
}

// findProps finds every struct in file that embeds hxattrs.Element and
// validates its omission directive.
func (g *Generator) findProps(file sourceFile) ([]PropsInfo, error) {
	qualifier := importName(file.ast)
	local := file.Package == "hxattrs" && qualifier == ""

	var props []PropsInfo
	for _, decl := range file.ast.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.TypeParams != nil {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}

			field := findEmbeddedElement(structType, qualifier, local)
			if field == nil {
				continue
			}

			pos := file.fset.Position(field.Pos())
			info := PropsInfo{
				TypeName: typeSpec.Name.Name,
				Pos:      fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line),
			}

			list, err := parseOmitTag(field.Tag)
			if err != nil {
				var se *hxattrs.SchemaError
				if errors.As(err, &se) {
					se.Pos = fmt.Sprintf("%s:%d", pos.Filename, pos.Line)
				}
				return nil, err
			}
			info.Omit = list.Names()
			props = append(props, info)
		}
	}

	return props, nil
}

// importName returns the name under which file imports hxattrs, or "".
func importName(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != ImportPath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return "hxattrs"
	}
	return ""
}

// findEmbeddedElement returns the field embedding hxattrs.Element, or
// Element itself when local is set.
func findEmbeddedElement(structType *ast.StructType, qualifier string, local bool) *ast.Field {
	for _, field := range structType.Fields.List {
		if len(field.Names) != 0 {
			continue
		}

		switch x := field.Type.(type) {
		case *ast.SelectorExpr:
			if ident, ok := x.X.(*ast.Ident); ok && qualifier != "" && ident.Name == qualifier && x.Sel.Name == "Element" {
				return field
			}
		case *ast.Ident:
			if local && x.Name == "Element" {
				return field
			}
		}
	}
	return nil
}

// parseOmitTag parses an `hxattrs:"omit=class,id"` struct tag into a
// validated omission list.
func parseOmitTag(tag *ast.BasicLit) (hxattrs.OmitList, error) {
	if tag == nil {
		return hxattrs.OmitList{}, nil
	}
	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return hxattrs.OmitList{}, err
	}

	value, ok := reflect.StructTag(raw).Lookup("hxattrs")
	if !ok {
		return hxattrs.OmitList{}, nil
	}

	var names []string
	for _, directive := range strings.Split(value, ";") {
		key, list, _ := strings.Cut(strings.TrimSpace(directive), "=")
		switch key {
		case "omit":
			for _, n := range strings.Split(list, ",") {
				if n = strings.TrimSpace(n); n != "" {
					names = append(names, n)
				}
			}
		case "":
		default:
			return hxattrs.OmitList{}, fmt.Errorf("unknown hxattrs directive %q", key)
		}
	}

	return hxattrs.NewOmitList(names...)
}

// outputPath returns the generated file path for a source file.
func (g *Generator) outputPath(source string) string {
	return strings.TrimSuffix(source, ".go") + g.opts.Suffix
}

// cleanPackage removes generated files from a package.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), g.opts.Suffix) {
			continue
		}
		path := filepath.Join(pkgPath, entry.Name())
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if !generated {
			continue
		}
		g.log.Info("removing", "file", path, "dry_run", g.opts.DryRun)
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// isGenerated reports whether the file at path starts with the generated
// code header.
func isGenerated(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(string(data), generatedHeader), nil
}
