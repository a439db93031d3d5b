package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/tordrt/schemats/internal/schema"
)

func ordersTable() schema.Table {
	return schema.Table{
		Name: "orders",
		Columns: []schema.Column{
			{Name: "id", HostType: "number", HasDefault: true},
			{Name: "customer", HostType: "string", Comment: strPtr("Customer name")},
			{Name: "note", HostType: "string", Nullable: true},
			{Name: "status", HostType: "'new' | 'paid'", DefaultValue: strPtr("'new'")},
		},
	}
}

func TestDeclarationName(t *testing.T) {
	tests := []struct {
		table  string
		prefix string
		want   string
	}{
		{table: "orders", prefix: "SQL", want: "SQLOrders"},
		{table: "user_accounts", prefix: "", want: "UserAccounts"},
		{table: "string", prefix: "", want: "String"},
		{table: "order-items", prefix: "Db", want: "DbOrderItems"},
		{table: "ORDERS", prefix: "SQL", want: "SQLOrders"},
	}

	for _, tt := range tests {
		if got := DeclarationName(tt.table, tt.prefix); got != tt.want {
			t.Errorf("DeclarationName(%q, %q) = %q, want %q", tt.table, tt.prefix, got, tt.want)
		}
	}
}

func TestTableToTS(t *testing.T) {
	got := TableToTS(ordersTable(), Config{Prefix: "SQL"})

	want := `/**
 * Exposes all fields present in orders as a typescript
 * type.
 * This is especially useful for SELECT * FROM
 */
export interface SQLOrders {
  id: number
  /** Customer name */
  customer: string
  note: string | null
  status: 'new' | 'paid'
}

/**
 * Exposes the same fields as SQLOrders,
 * but makes every field containing a DEFAULT value optional.
 *
 * This is especially useful when generating inserts, as you
 * should be able to omit these fields if you'd like
 */
export interface SQLOrdersWithDefaults {
  /** Generated by the database. */
  id?: number
  /** Customer name */
  customer: string
  note?: string | null
  /** Defaults to: 'new' */
  status?: 'new' | 'paid'
}
`
	if got != want {
		t.Errorf("TableToTS() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableToTSOutputAsTypesOnlyChangesIntroducer(t *testing.T) {
	table := ordersTable()
	for _, cfg := range allConfigs {
		if cfg.OutputAsTypes {
			continue
		}
		iface := TableToTS(table, cfg)
		cfg.OutputAsTypes = true
		alias := TableToTS(table, cfg)

		if !strings.Contains(alias, "export type Orders = {") || !strings.Contains(alias, "export type OrdersWithDefaults = {") {
			t.Fatalf("type alias output missing declarations:\n%s", alias)
		}

		converted := strings.ReplaceAll(alias, "export type Orders = {", "export interface Orders {")
		converted = strings.ReplaceAll(converted, "export type OrdersWithDefaults = {", "export interface OrdersWithDefaults {")
		if converted != iface {
			t.Errorf("cfg=%+v: alias and interface output differ beyond the introducer\nalias:\n%s\ninterface:\n%s", cfg, alias, iface)
		}
	}
}

func TestTableToTSIdempotent(t *testing.T) {
	table := ordersTable()
	cfg := Config{Prefix: "SQL", NullPlusUndefined: true}

	first := TableToTS(table, cfg)
	for i := 0; i < 3; i++ {
		if got := TableToTS(table, cfg); got != first {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestTableToTSPreservesColumnOrder(t *testing.T) {
	table := schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "zeta", HostType: "number"},
			{Name: "alpha", HostType: "number"},
			{Name: "mid", HostType: "number"},
		},
	}

	out := TableToTS(table, Config{})
	full, insert, found := strings.Cut(out, "WithDefaults {")
	if !found {
		t.Fatalf("insert declaration not found in:\n%s", out)
	}

	for _, part := range []string{full, insert} {
		z := strings.Index(part, "zeta:")
		a := strings.Index(part, "alpha:")
		m := strings.Index(part, "mid:")
		if z < 0 || a < 0 || m < 0 || !(z < a && a < m) {
			t.Errorf("columns out of order (zeta=%d alpha=%d mid=%d) in:\n%s", z, a, m, part)
		}
		if strings.Count(part, "zeta:") != 1 {
			t.Errorf("zeta emitted %d times, want 1", strings.Count(part, "zeta:"))
		}
	}
}

func TestTableToTSTableComment(t *testing.T) {
	table := ordersTable()
	table.Comment = "Customer orders */ and more"

	out := TableToTS(table, Config{})
	if !strings.Contains(out, " * Customer orders * / and more\n") {
		t.Errorf("table comment not rendered or not escaped:\n%s", out)
	}
}

func TestSchemaToTS(t *testing.T) {
	s := &schema.Schema{
		Tables: []schema.Table{
			ordersTable(),
			{Name: "events", Columns: []schema.Column{{Name: "payload", HostType: JSONType, Nullable: true}}},
			{Name: "audit_log", Columns: []schema.Column{{Name: "id", HostType: "number"}}},
		},
	}

	out, err := SchemaToTS(context.Background(), s, Config{Prefix: "SQL"})
	if err != nil {
		t.Fatalf("SchemaToTS() error = %v", err)
	}

	if !strings.HasPrefix(out, JSONHeader) {
		t.Errorf("expected output to start with the JSON helper declarations:\n%s", out)
	}

	var positions []int
	for _, name := range []string{"SQLOrders {", "SQLEvents {", "SQLAuditLog {"} {
		p := strings.Index(out, "export interface "+name)
		if p < 0 {
			t.Fatalf("declaration %s not found in:\n%s", name, out)
		}
		positions = append(positions, p)
	}
	if !(positions[0] < positions[1] && positions[1] < positions[2]) {
		t.Errorf("tables out of schema order: %v", positions)
	}
}

func TestSchemaToTSWithoutJSON(t *testing.T) {
	s := &schema.Schema{Tables: []schema.Table{ordersTable()}}

	out, err := SchemaToTS(context.Background(), s, Config{})
	if err != nil {
		t.Fatalf("SchemaToTS() error = %v", err)
	}
	if strings.Contains(out, "JSONValue") {
		t.Errorf("unexpected JSON helpers in:\n%s", out)
	}
	if out != TableToTS(ordersTable(), Config{}) {
		t.Errorf("single table schema output differs from TableToTS")
	}
}

func TestSchemaToTSCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &schema.Schema{Tables: []schema.Table{ordersTable()}}
	if _, err := SchemaToTS(ctx, s, Config{}); err == nil {
		t.Error("expected error for canceled context")
	}
}
