package gen

import (
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxshaw/sqb/catalog"
)

const testCatalog = `
queries:
  - name: top_customers
    select: [expensiveOrder.customer_id]
    from: orders expensiveOrder
    order_by: [expensiveOrder.amount desc]
    limit: 3
  - name: orders
    select: [o.*]
    from: orders o
    where:
      - where: "o.name = :name"
      - and_in:
          column: o.customer_id
          query: top_customers
`

// constValues parses src and returns its string constants by name.
func constValues(t *testing.T, src []byte) (string, map[string]string) {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "queries.go", src, parser.ParseComments)
	require.NoError(t, err)

	values := make(map[string]string)
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, name := range spec.Names {
			lit, ok := spec.Values[i].(*ast.BasicLit)
			if !ok {
				continue
			}
			v, err := strconv.Unquote(lit.Value)
			require.NoError(t, err)
			values[name.Name] = v
		}
		return true
	})

	return f.Name.Name, values
}

func TestSource(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	src, err := Source(c, "", "queries.yaml")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(src, []byte("// Code generated by sqbgen from queries.yaml. DO NOT EDIT.")))

	pkg, values := constValues(t, src)
	assert.Equal(t, "queries", pkg)
	assert.Equal(t, map[string]string{
		"TopCustomersSQL":      "select expensiveOrder.customer_id from orders expensiveOrder order by expensiveOrder.amount desc limit 3",
		"TopCustomersCountSQL": "select count(1)  from orders expensiveOrder",
		"OrdersSQL":            "select o.* from orders o where o.name = :name and o.customer_id in (select expensiveOrder.customer_id from orders expensiveOrder order by expensiveOrder.amount desc limit 3)",
		"OrdersCountSQL":       "select count(1)  from orders o where o.name = :name and o.customer_id in (select expensiveOrder.customer_id from orders expensiveOrder order by expensiveOrder.amount desc limit 3)",
	}, values)

	assert.Contains(t, string(src), `"top_customers": TopCustomersSQL,`)
	assert.Regexp(t, `"orders":\s+OrdersSQL,`, string(src))
}

func TestSource_Package(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	src, err := Source(c, "sqlq", "queries.yaml")
	require.NoError(t, err)

	pkg, _ := constValues(t, src)
	assert.Equal(t, "sqlq", pkg)

	_, err = Source(c, "not-a-package", "queries.yaml")
	var verr *catalog.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "package", verr.Field)
}

func TestSource_Empty(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	src, err := Source(c, "", "queries.yaml")
	require.NoError(t, err)

	_, values := constValues(t, src)
	assert.Empty(t, values)
}

func TestSource_InvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		defs  []catalog.Definition
		query string
	}{
		{
			name:  "not an identifier",
			defs:  []catalog.Definition{{Name: "1st", From: "x"}},
			query: "1st",
		},
		{
			name:  "separators only",
			defs:  []catalog.Definition{{Name: "__", From: "x"}},
			query: "__",
		},
		{
			name:  "same identifier",
			defs:  []catalog.Definition{{Name: "top_customers", From: "x"}, {Name: "top-customers", From: "x"}},
			query: "top_customers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.New(tt.defs...)
			require.NoError(t, err)

			_, err = Source(c, "", "queries.yaml")
			var verr *catalog.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.query, verr.Query)
		})
	}
}

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		name, expected string
	}{
		{"orders", "Orders"},
		{"top_customers", "TopCustomers"},
		{"topCustomers", "TopCustomers"},
		{"orders-by.day", "OrdersByDay"},
		{"account names", "AccountNames"},
		{"__", ""},
		{"ärger", "Ärger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exportedIdent(tt.name))
		})
	}
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "queries.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	var logs bytes.Buffer
	out := filepath.Join(dir, "internal", "queries", "queries_gen.go")

	err := Gen(Config{
		Catalog: catalogPath,
		Output:  out,
		Package: "queries",
		Logger:  zerolog.New(&logs),
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)

	_, values := constValues(t, src)
	assert.Len(t, values, 4)
	assert.Contains(t, logs.String(), "Generated queries")
	assert.Contains(t, logs.String(), `"queries":2`)
}

func TestGen_MissingCatalog(t *testing.T) {
	err := Gen(Config{
		Catalog: filepath.Join(t.TempDir(), "missing.yaml"),
		Output:  filepath.Join(t.TempDir(), "out.go"),
		Logger:  zerolog.Nop(),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
