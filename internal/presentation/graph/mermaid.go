// Package graph renders a dispatch tree as a Mermaid flowchart for
// inspection ('espalier graph').
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax for the verb tree.
// Semantic styling:
//   - Verb: [Rectangle]
//   - Command: [[Subroutine]], annotated with its flags
func GenerateMermaid(verbs []*domain.Verb) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, v := range verbs {
		writeVerb(&sb, v, v.Name())
	}

	return sb.String()
}

func writeVerb(sb *strings.Builder, v *domain.Verb, path string) {
	id := sanitizeMermaidID(path)
	fmt.Fprintf(sb, "    %s[\"%s\"]\n", id, v.Name())

	for _, name := range v.VerbNames() {
		child, _ := v.Verb(name)
		childPath := path + " " + name
		fmt.Fprintf(sb, "    %s --> %s\n", id, sanitizeMermaidID(childPath))
		writeVerb(sb, child, childPath)
	}

	for _, name := range v.CommandNames() {
		cmd, _ := v.Command(name)
		childPath := path + " " + name
		childID := sanitizeMermaidID(childPath)
		fmt.Fprintf(sb, "    %s[[\"%s\"]]\n", childID, commandLabel(cmd))
		fmt.Fprintf(sb, "    %s --> %s\n", id, childID)
	}
}

func commandLabel(cmd *domain.Command) string {
	params := cmd.Parameters()
	if len(params) == 0 {
		return cmd.Name()
	}

	flags := make([]string, 0, len(params))
	for _, p := range params {
		flags = append(flags, fmt.Sprintf("-%c/--%s", p.ShortName(), p.LongName()))
	}
	return fmt.Sprintf("%s <br/> %s", cmd.Name(), strings.Join(flags, " "))
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, " ", "_")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
