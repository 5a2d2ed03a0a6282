// Package validator lints tree declarations before compilation. Unlike the
// domain constructors, which stop at the first problem, the validator walks
// the whole spec and reports every finding at once.
package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/espalier/internal/dto"
)

// ValidateTree checks a declaration spec for structural problems: duplicate
// names at one level (including verb/command collisions), duplicate flags,
// empty or whitespace-bearing names, malformed short flags, and dead
// branches with no children at all.
func ValidateTree(spec *dto.TreeSpec) error {
	var findings []string

	seen := make(map[string]bool)
	for i := range spec.Verbs {
		vs := &spec.Verbs[i]
		checkName(vs.Name, "verb", "", &findings)
		if seen[vs.Name] {
			findings = append(findings, fmt.Sprintf("duplicate top-level verb %q", vs.Name))
		}
		seen[vs.Name] = true
		validateVerb(vs, vs.Name, &findings)
	}

	if len(findings) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(findings), strings.Join(findings, "\n- "))
	}
	return nil
}

func validateVerb(vs *dto.VerbSpec, path string, findings *[]string) {
	if len(vs.Verbs) == 0 && len(vs.Commands) == 0 {
		*findings = append(*findings, fmt.Sprintf("verb %q has no children; every line reaching it resolves to an error", path))
	}

	// One namespace per level: a verb and a command sharing a name would
	// make the command unreachable (verbs are looked up first).
	seen := make(map[string]bool)

	for i := range vs.Verbs {
		child := &vs.Verbs[i]
		checkName(child.Name, "verb", path, findings)
		if seen[child.Name] {
			*findings = append(*findings, fmt.Sprintf("verb %q: duplicate child %q", path, child.Name))
		}
		seen[child.Name] = true
		validateVerb(child, path+" "+child.Name, findings)
	}

	for i := range vs.Commands {
		cs := &vs.Commands[i]
		checkName(cs.Name, "command", path, findings)
		if seen[cs.Name] {
			*findings = append(*findings, fmt.Sprintf("verb %q: duplicate child %q", path, cs.Name))
		}
		seen[cs.Name] = true
		validateCommand(cs, path+" "+cs.Name, findings)
	}
}

func validateCommand(cs *dto.CommandSpec, path string, findings *[]string) {
	shorts := make(map[string]bool)
	longs := make(map[string]bool)

	for _, ps := range cs.Parameters {
		if utf8.RuneCountInString(ps.Short) != 1 {
			*findings = append(*findings, fmt.Sprintf("command %q: short flag %q is not a single character", path, ps.Short))
		}
		if ps.Long == "" {
			*findings = append(*findings, fmt.Sprintf("command %q: flag -%s has no long name", path, ps.Short))
		}
		if shorts[ps.Short] {
			*findings = append(*findings, fmt.Sprintf("command %q: duplicate short flag -%s", path, ps.Short))
		}
		if ps.Long != "" && longs[ps.Long] {
			*findings = append(*findings, fmt.Sprintf("command %q: duplicate long flag --%s", path, ps.Long))
		}
		shorts[ps.Short] = true
		longs[ps.Long] = true
	}
}

func checkName(name, kind, path string, findings *[]string) {
	at := "top level"
	if path != "" {
		at = fmt.Sprintf("verb %q", path)
	}
	switch {
	case name == "":
		*findings = append(*findings, fmt.Sprintf("%s: %s with empty name", at, kind))
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		// Path segments are split on whitespace, so such a name can never match.
		*findings = append(*findings, fmt.Sprintf("%s: %s name %q contains whitespace and is unreachable", at, kind, name))
	}
}
