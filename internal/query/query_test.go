package query_test

import (
	"strings"
	"testing"

	"github.com/gardening-api/internal/schema"
)

func buildFor(t *testing.T, name string, params map[string]any) (string, []any) {
	t.Helper()

	c := newCatalog(t)
	entry, err := c.Get(name)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	bound, err := c.Bind(entry, params)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	stmt, args, err := entry.Query.Build(schema.Default(), bound)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return stmt, args
}

func TestBuildSimpleProjection(t *testing.T) {
	stmt, args := buildFor(t, "office-code-and-city", nil)

	want := "SELECT oficina.codigo_oficina, oficina.ciudad FROM oficina ORDER BY oficina.codigo_oficina"
	if stmt != want {
		t.Errorf("expected %q, got %q", want, stmt)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildParameterIsNeverInlined(t *testing.T) {
	stmt, args := buildFor(t, "offices-in-country", map[string]any{"country": "España'; DROP TABLE oficina--"})

	if strings.Contains(stmt, "España") || strings.Contains(stmt, "DROP") {
		t.Errorf("caller value leaked into statement text: %q", stmt)
	}
	if !strings.Contains(stmt, "oficina.pais = ?") {
		t.Errorf("expected placeholder condition, got %q", stmt)
	}
	if len(args) != 1 || args[0] != "España'; DROP TABLE oficina--" {
		t.Errorf("expected the value bound as an argument, got %v", args)
	}
}

func TestBuildJoinsFromSchema(t *testing.T) {
	stmt, _ := buildFor(t, "office-addresses-with-customers-in-city", map[string]any{"city": "Fuenlabrada"})

	if !strings.HasPrefix(stmt, "SELECT DISTINCT ") {
		t.Errorf("expected DISTINCT projection, got %q", stmt)
	}
	for _, fragment := range []string{
		"JOIN empleado ON oficina.codigo_oficina = empleado.codigo_oficina",
		"JOIN cliente ON empleado.codigo_empleado = cliente.codigo_empleado_rep_ventas",
	} {
		if !strings.Contains(stmt, fragment) {
			t.Errorf("expected %q in %q", fragment, stmt)
		}
	}
}

func TestBuildLeftJoins(t *testing.T) {
	stmt, _ := buildFor(t, "customers-with-sales-representatives", nil)

	for _, fragment := range []string{
		"LEFT JOIN empleado ON empleado.codigo_empleado = cliente.codigo_empleado_rep_ventas",
		"LEFT JOIN oficina ON oficina.codigo_oficina = empleado.codigo_oficina",
	} {
		if !strings.Contains(stmt, fragment) {
			t.Errorf("expected %q in %q", fragment, stmt)
		}
	}
}

func TestBuildExpandsListPlaceholders(t *testing.T) {
	stmt, args := buildFor(t, "customers-in-city-with-reps", map[string]any{"city": "Madrid", "reps": []int{11, 30, 31}})

	if !strings.Contains(stmt, "cliente.codigo_empleado_rep_ventas IN (?, ?, ?)") {
		t.Errorf("expected expanded IN placeholders, got %q", stmt)
	}
	if len(args) != 4 {
		t.Errorf("expected 4 args (city + 3 reps), got %v", args)
	}
}

func TestBuildPrefixMatch(t *testing.T) {
	stmt, args := buildFor(t, "customer-count-by-city-prefix", map[string]any{"prefix": "M"})

	if !strings.Contains(stmt, "cliente.ciudad LIKE ?") {
		t.Errorf("expected LIKE condition, got %q", stmt)
	}
	if len(args) != 1 || args[0] != "M%" {
		t.Errorf("expected wildcard appended to the argument, got %v", args)
	}
}

func TestBuildNestedSubqueries(t *testing.T) {
	stmt, args := buildFor(t, "offices-without-product-line-sales", map[string]any{"product_line": "Frutales"})

	if got := strings.Count(stmt, "NOT IN ("); got != 1 {
		t.Errorf("expected one NOT IN, got %d in %q", got, stmt)
	}
	// "NOT IN (" тоже содержит " IN (", вместе с двумя вложенными IN — три
	if got := strings.Count(stmt, " IN ("); got != 3 {
		t.Errorf("expected three IN clauses, got %d in %q", got, stmt)
	}
	if !strings.Contains(stmt, "JOIN gama_producto ON gama_producto.gama = producto.gama") {
		t.Errorf("expected product line join, got %q", stmt)
	}
	if len(args) != 1 || args[0] != "Frutales" {
		t.Errorf("expected single bound argument, got %v", args)
	}
}

func TestBuildCorrelatedExists(t *testing.T) {
	stmt, _ := buildFor(t, "customers-without-payments", nil)

	if !strings.Contains(stmt, "NOT EXISTS (SELECT 1 FROM pago WHERE pago.codigo_cliente = cliente.codigo_cliente)") {
		t.Errorf("expected correlated NOT EXISTS, got %q", stmt)
	}
}

func TestBuildStatementsAreSelects(t *testing.T) {
	c := newCatalog(t)
	s := schema.Default()

	params := map[string]map[string]any{
		"offices-in-country":                      {"country": "España"},
		"office-addresses-with-customers-in-city": {"city": "Fuenlabrada"},
		"offices-without-product-line-sales":      {"product_line": "Frutales"},
		"customers-in-country":                    {"country": "España"},
		"customers-in-city-with-reps":             {"city": "Madrid"},
		"customer-count-in-city":                  {"city": "Madrid"},
		"customer-count-by-city-prefix":           {"prefix": "M"},
	}

	for _, name := range c.Names() {
		entry, err := c.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		bound, err := c.Bind(entry, params[name])
		if err != nil {
			t.Fatalf("Bind(%q): %v", name, err)
		}
		stmt, _, err := entry.Query.Build(s, bound)
		if err != nil {
			t.Fatalf("Build(%q): %v", name, err)
		}
		if !strings.HasPrefix(stmt, "SELECT ") {
			t.Errorf("%s: statement is not a SELECT: %q", name, stmt)
		}
	}
}
