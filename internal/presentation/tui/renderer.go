package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/espalier/pkg/domain"
)

// NewManualRenderer returns a function that renders a Manual as terminal
// markdown using glamour, auto-detecting light/dark background.
func NewManualRenderer() func(name string, m domain.Manual) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(name string, m domain.Manual) (string, error) {
		return r.Render(ManualMarkdown(name, m))
	}
}

// ManualMarkdown builds the markdown document for a verb's Manual.
func ManualMarkdown(name string, m domain.Manual) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", name)
	if m.Short() != "" {
		fmt.Fprintf(&sb, "%s\n\n", m.Short())
	}

	details := m.Details()
	if len(details) > 0 {
		sb.WriteString("## Usage\n\n")
		for _, line := range details {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
	}

	return sb.String()
}
