package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/espalier/internal/presentation/graph"
	"github.com/aretw0/espalier/internal/testutils"
)

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(testutils.SampleVerbs(t))

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("Expected mermaid header, got %q", out[:min(len(out), 20)])
	}

	for _, want := range []string{
		`db["db"]`,
		`db_table["table"]`,
		"db --> db_table",
		"db_table --> db_table_create",
		`-i/--name`,
		`-n/--count`,
		"db --> db_status",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
}
