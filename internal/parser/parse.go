package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Parse maps one line of input onto a canonical command intent. Misspelled
// verbs and item names resolve fuzzily; genuinely ambiguous or unmappable
// input comes back with a Clarify question instead of a guess.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, status, plots, till, plant, harvest, buy, sell, cook.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argTokens = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	args, clarify, argScore := resolveArgs(ctx, def, argTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = args
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}
	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}
	return intent
}

// CommandLine renders an intent back into the plain text the command
// executor understands.
func (i Intent) CommandLine() string {
	if i.Verb == "" {
		return ""
	}
	return strings.TrimSpace(i.Verb + " " + strings.Join(i.Args, " "))
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "plots", "inventory", "prices", "chests":
		return Query
	default:
		return Command
	}
}

func resolveArgs(ctx ParseContext, def CommandDef, tokens []string) ([]string, *ClarifyQuestion, float64) {
	if len(tokens) == 0 {
		return nil, nil, 0.9
	}

	vocabulary := append(append([]string(nil), ctx.Crops...), ctx.Products...)
	resolved := make([]string, 0, len(tokens))
	score := 0.9
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if _, err := strconv.Atoi(token); err == nil {
			resolved = append(resolved, token)
			continue
		}
		if token == "all" || token == "none" {
			resolved = append(resolved, token)
			continue
		}

		// Multi-word item names were split by normalisation; greedily try
		// the longest span first. Counts and keywords never join a span.
		maxSpan := 1
		for maxSpan < 3 && i+maxSpan < len(tokens) && !isReservedToken(tokens[i+maxSpan]) {
			maxSpan++
		}
		matched := false
		for span := maxSpan; span >= 1 && !matched; span-- {
			candidate := strings.Join(tokens[i:i+span], " ")
			if item, ok := resolveItem(candidate, vocabulary); ok {
				resolved = append(resolved, item)
				if item != candidate {
					score -= 0.06
				}
				i += span - 1
				matched = true
			}
		}
		if matched {
			continue
		}
		return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("I don't recognise %q.", token)}, 0.4
	}
	return resolved, nil, score
}

func isReservedToken(token string) bool {
	if token == "all" || token == "none" {
		return true
	}
	_, err := strconv.Atoi(token)
	return err == nil
}

// resolveItem matches a token span against the catalog vocabulary and
// returns the canonical underscore form.
func resolveItem(candidate string, vocabulary []string) (string, bool) {
	bestDist := -1
	best := ""
	for _, item := range vocabulary {
		display := normaliseInput(item)
		if display == candidate {
			return item, true
		}
		if len(candidate) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(candidate, display)
		if dist > levenshteinLimit(len(display)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = item
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
