// Package gen renders a query catalog to Go source: one pair of string
// constants per query holding its statement and its count statement.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/tools/imports"

	"github.com/maxshaw/sqb/catalog"
)

const defaultPackage = "queries"

//go:embed template/*
var tplDir embed.FS

var tpl = template.Must(template.New("gen").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).ParseFS(tplDir, "template/*.tmpl"))

type Config struct {
	// Catalog is the path of the YAML catalog.
	Catalog string
	// Output is the path of the generated file.
	Output string
	// Package names the generated package; "queries" when empty.
	Package string

	Logger zerolog.Logger
}

type query struct {
	Name, Ident string
	SQL, Count  string
}

// Gen loads cfg.Catalog and writes the generated source to cfg.Output.
func Gen(cfg Config) error {
	c, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	src, err := Source(c, cfg.Package, filepath.Base(cfg.Catalog))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	cfg.Logger.Info().
		Str("catalog", cfg.Catalog).
		Str("output", cfg.Output).
		Int("queries", len(c.Names())).
		Msg("Generated queries")

	return nil
}

// Source renders the Go file for c. source is mentioned in the header.
func Source(c *catalog.Catalog, pkg, source string) ([]byte, error) {
	if pkg == "" {
		pkg = defaultPackage
	}
	if !token.IsIdentifier(pkg) {
		return nil, &catalog.ValidationError{Field: "package", Msg: fmt.Sprintf("%q is not a valid package name", pkg)}
	}

	queries := make([]query, 0, len(c.Names()))
	for _, name := range c.Names() {
		ident := exportedIdent(name)
		if !token.IsIdentifier(ident) || !token.IsExported(ident) {
			return nil, &catalog.ValidationError{Query: name, Field: "name", Msg: "does not form an exported Go identifier"}
		}

		b, err := c.Builder(name)
		if err != nil {
			return nil, err
		}

		queries = append(queries, query{Name: name, Ident: ident, SQL: b.Build(), Count: b.BuildCount()})
	}

	if dup := lo.FindDuplicatesBy(queries, func(q query) string { return q.Ident }); len(dup) > 0 {
		return nil, &catalog.ValidationError{Query: dup[0].Name, Field: "name", Msg: fmt.Sprintf("identifier %s is generated by more than one query", dup[0].Ident)}
	}

	var out bytes.Buffer
	if err := tpl.ExecuteTemplate(&out, "queries.tmpl", map[string]any{
		"Source":  source,
		"Package": pkg,
		"Queries": queries,
	}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(pkg+".go", out.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// exportedIdent turns "top_customers" or "topCustomers" into "TopCustomers".
func exportedIdent(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})

	return strings.Join(lo.Map(words, func(w string, _ int) string { return upperFirst(w) }), "")
}

func upperFirst(s string) string {
	var chars []rune
	for i, c := range s {
		if i == 0 {
			chars = append(chars, unicode.ToUpper(c))
		} else {
			chars = append(chars, c)
		}
	}
	return string(chars)
}
