package generator

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/pthm/hxattrs"
)

// initialisms are hyphen segments spelled in upper case in field names.
var initialisms = map[string]string{
	"id":  "ID",
	"url": "URL",
}

var groupComments = map[hxattrs.Group]string{
	hxattrs.GroupIdentity:    "Identity and styling attributes.",
	hxattrs.GroupARIA:        "ARIA attributes.",
	hxattrs.GroupInteraction: "Interaction attributes.",
	hxattrs.GroupHTMX:        "htmx attributes.",
}

// FieldIdent returns the exported Go field name for a vocabulary name:
// "hx-push-url" becomes HxPushURL.
func FieldIdent(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			sb.WriteString(up)
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

type elementField struct {
	Name  string
	Ident string
}

type elementGroup struct {
	Comment string
	Fields  []elementField
}

// GenerateElement renders the gofmt-formatted Element struct for the
// current vocabulary into package pkg. Reserved names get no field.
func GenerateElement(pkg string) ([]byte, error) {
	data := struct {
		Version   int
		Package   string
		Qualifier string
		Import    string
		Groups    []elementGroup
		Fields    []elementField
	}{
		Version: hxattrs.VocabularyVersion,
		Package: pkg,
	}
	if pkg != "hxattrs" {
		data.Qualifier = "hxattrs."
		data.Import = strconv.Quote(ImportPath)
	}

	for _, name := range hxattrs.Vocabulary() {
		if hxattrs.IsReserved(name) {
			continue
		}
		group, _ := hxattrs.GroupOf(name)
		field := elementField{Name: name, Ident: FieldIdent(name)}

		last := len(data.Groups) - 1
		if last < 0 || data.Groups[last].Comment != groupComments[group] {
			data.Groups = append(data.Groups, elementGroup{Comment: groupComments[group]})
			last++
		}
		data.Groups[last].Fields = append(data.Groups[last].Fields, field)
		data.Fields = append(data.Fields, field)
	}

	var buf bytes.Buffer
	if err := elementTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// WriteElement generates the Element struct and writes it to path.
func (g *Generator) WriteElement(path, pkg string) error {
	g.log.Info("generating", "file", path, "vocabulary_version", hxattrs.VocabularyVersion, "dry_run", g.opts.DryRun)
	if g.opts.DryRun {
		return nil
	}
	code, err := GenerateElement(pkg)
	if err != nil {
		return err
	}
	return writeSource(g, path, code)
}

var elementTemplate = template.Must(template.New("element").Parse(`// Code generated by hxattrs. DO NOT EDIT.
// Vocabulary version: {{.Version}}

package {{.Package}}
{{if .Import}}
import {{.Import}}
{{end}}
// Element carries one string field per attribute vocabulary name plus an
// attribute bag for everything else. Props structs embed it to accept every
// vocabulary attribute:
//
//	type ButtonProps struct {
//		hxattrs.Element
//		Size ButtonSize
//	}
//
// The reserved names for and type have no field; set them through Attrs.
type Element struct {
{{- range .Groups}}
	// {{.Comment}}
{{- range .Fields}}
	{{.Ident}} string
{{- end}}
{{end}}
	// Attrs holds reserved and pass-through attributes, and values
	// concatenated onto the typed fields.
	Attrs {{.Qualifier}}Attrs
}

// field returns a pointer to the typed field for a canonical name, or nil.
func (e *Element) field(name string) *string {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .Name}}:
		return &e.{{.Ident}}
{{- end}}
	}
	return nil
}
`))
