package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Intent is the structured reading of one line of player input. Verb is
// always a canonical command name; Args are resolved item or plot tokens.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the vocabulary the resolver matches item tokens
// against, normally the crop and product catalogs.
type ParseContext struct {
	Crops    []string
	Products []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
}
