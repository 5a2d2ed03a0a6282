package domain

// ActionKind tags the variant of an Action.
type ActionKind string

// Action kinds. Every resolution of an input line produces exactly one of these.
const (
	// ActionUnknown reports that the first path segment matched no top-level verb.
	// Token carries the offending segment.
	ActionUnknown ActionKind = "UNKNOWN"

	// ActionIncorrect reports that a later path segment matched neither a child
	// verb nor a child command. Token carries the segment, Verb the node where
	// resolution stalled (for contextual help).
	ActionIncorrect ActionKind = "INCORRECT"

	// ActionBadParameter reports a malformed short flag: more than one rune
	// after the leading dash. Token carries the stripped text, Command the
	// command that was tokenizing.
	ActionBadParameter ActionKind = "BAD_PARAMETER"

	// ActionRun is a full match: Command is resolved and Values holds its
	// bound parameter groups, ready for the host to dispatch.
	ActionRun ActionKind = "RUN"

	// ActionHelp is reserved for help requests. The core never emits it; hosts
	// decide when a line means "help" and construct it themselves.
	ActionHelp ActionKind = "HELP"

	// ActionExit is the reserved terminal outcome, likewise host-emitted.
	ActionExit ActionKind = "EXIT"
)

// Action is the closed result type produced by resolving one input line.
// Each variant carries exactly the context needed to render a useful message
// without re-parsing: the offending token, the node where resolution stopped,
// or the bound values. Referenced nodes are borrowed from the tree, never
// owned by the Action.
type Action struct {
	Kind    ActionKind
	Token   string
	Verb    *Verb
	Command *Command
	Values  []ParameterValue
}

// NewUnknown builds the Unknown variant for an unregistered top-level token.
func NewUnknown(token string) Action {
	return Action{Kind: ActionUnknown, Token: token}
}

// NewIncorrect builds the Incorrect variant, carrying the verb where
// resolution stalled.
func NewIncorrect(token string, verb *Verb) Action {
	return Action{Kind: ActionIncorrect, Token: token, Verb: verb}
}

// NewBadParameter builds the BadParameter variant for a malformed short flag.
func NewBadParameter(token string, cmd *Command) Action {
	return Action{Kind: ActionBadParameter, Token: token, Command: cmd}
}

// NewRun builds the Run variant with the command's bound parameter groups.
func NewRun(cmd *Command, values []ParameterValue) Action {
	return Action{Kind: ActionRun, Command: cmd, Values: values}
}

// NewHelp builds the Help variant for the given verb (nil means the tree root).
func NewHelp(verb *Verb, values []ParameterValue) Action {
	return Action{Kind: ActionHelp, Verb: verb, Values: values}
}

// NewExit builds the terminal Exit variant.
func NewExit() Action {
	return Action{Kind: ActionExit}
}
