// Package dto holds the raw declaration structs for tree files, decoded
// strictly via mapstructure before compilation into domain values.
package dto

// TreeSpec is the root of a tree declaration document.
type TreeSpec struct {
	Verbs []VerbSpec `json:"verbs" mapstructure:"verbs"`
}

// VerbSpec declares one verb: its manual and its children.
type VerbSpec struct {
	Name    string `json:"name" mapstructure:"name"`
	Summary string `json:"summary" mapstructure:"summary"`

	// Help holds the manual's detail lines.
	Help []string `json:"help" mapstructure:"help"`

	Verbs    []VerbSpec    `json:"verbs" mapstructure:"verbs"`
	Commands []CommandSpec `json:"commands" mapstructure:"commands"`
}

// CommandSpec declares one leaf command and its flags.
type CommandSpec struct {
	Name       string          `json:"name" mapstructure:"name"`
	Parameters []ParameterSpec `json:"parameters" mapstructure:"parameters"`
}

// ParameterSpec declares one flag. Short must be exactly one rune.
type ParameterSpec struct {
	Short string `json:"short" mapstructure:"short"`
	Long  string `json:"long" mapstructure:"long"`
}
