package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

const generatedHeader = "// Code generated by hxattrs. DO NOT EDIT."

// writeProps writes the generated file for the props structs of one
// source file.
func (g *Generator) writeProps(file sourceFile, props []PropsInfo) error {
	outputFile := g.outputPath(file.Path)

	g.log.Info("generating", "file", outputFile, "types", len(props), "dry_run", g.opts.DryRun)

	if g.opts.DryRun {
		return nil
	}

	code, err := renderProps(file, props)
	if err != nil {
		return fmt.Errorf("render %s: %w", outputFile, err)
	}

	return writeSource(g, outputFile, code)
}

// writeSource formats code and writes it to path. Unformattable code is
// kept next to path for debugging.
func writeSource(g *Generator, path string, code []byte) error {
	formatted, err := format.Source(code)
	if err != nil {
		if writeErr := os.WriteFile(path+".unformatted", code, 0644); writeErr == nil {
			g.log.Warn("wrote unformatted code for debugging", "file", path+".unformatted")
		}
		return fmt.Errorf("format source: %w", err)
	}
	return os.WriteFile(path, formatted, 0644)
}

// renderProps renders the generated code for the props structs of a file.
func renderProps(file sourceFile, props []PropsInfo) ([]byte, error) {
	qualifier := importName(file.ast)
	local := qualifier == "" && file.Package == "hxattrs"

	data := struct {
		Package   string
		Source    string
		Qualifier string
		Import    string
		Props     []PropsInfo
	}{
		Package: file.Package,
		Source:  filepath.Base(file.Path),
		Props:   props,
	}
	if !local {
		if qualifier == "" {
			qualifier = "hxattrs"
		}
		data.Qualifier = qualifier + "."
		data.Import = strconv.Quote(ImportPath)
		if qualifier != "hxattrs" {
			data.Import = qualifier + " " + data.Import
		}
	}

	var buf bytes.Buffer
	if err := propsTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// omitVar names the package-level OmitList generated for a props type,
// lowering a leading initialism: HTMLElementProps becomes
// htmlElementPropsOmit.
func omitVar(typeName string) string {
	r := []rune(typeName)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r) + "Omit"
}

// quoteList renders names as a Go argument list.
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

var propsTemplate = template.Must(template.New("props").Funcs(template.FuncMap{
	"omitVar":   omitVar,
	"quoteList": quoteList,
}).Parse(`// Code generated by hxattrs. DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}
{{if .Import}}
import {{.Import}}
{{end}}
{{- range .Props}}

var {{omitVar .TypeName}} = {{$.Qualifier}}MustOmit({{quoteList .Omit}})

// SpreadAttrs composes the element attributes of {{.TypeName}}{{if .Omit}},
// leaving out {{quoteList .Omit}}{{end}}.
func (p {{.TypeName}}) SpreadAttrs() {{$.Qualifier}}Attrs {
	return p.Element.Spread({{omitVar .TypeName}})
}
{{- end}}
`))
