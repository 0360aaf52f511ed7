package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/domain/console"
)

func TestPrintResultSet(t *testing.T) {
	var buf bytes.Buffer
	err := printResultSet(&buf, console.ResultSet{
		Columns: []string{"name", "country"},
		Rows: [][]any{
			{"Virat Kohli", "India"},
			{"Steve Smith", nil},
		},
	})
	if err != nil {
		t.Fatalf("print result set: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name", "Virat Kohli", "NULL", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCommands_Registered(t *testing.T) {
	for _, cmd := range []struct {
		name string
		use  string
	}{
		{name: "schema", use: schemaCmd().Use},
		{name: "refresh", use: refreshCmd().Use},
		{name: "seed", use: seedCmd().Use},
		{name: "query", use: queryCmd().Use},
	} {
		if !strings.HasPrefix(cmd.use, cmd.name) {
			t.Fatalf("unexpected Use %q for %s", cmd.use, cmd.name)
		}
	}

	if err := queryCmd().Args(queryCmd(), nil); err == nil {
		t.Fatalf("query should require a statement argument")
	}
}
