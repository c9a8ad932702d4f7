package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/galaapp/gala/pkg/discovery/taxonomy"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/outputparser"
	"github.com/tmc/langchaingo/prompts"
)

// FilterHints is the analyzer's reading of a free-text request. It is
// an alternative FilterSpec source: every field is a suggestion the
// caller may apply or ignore.
type FilterHints struct {
	MoodScore     float64             `json:"moodScore"`
	Budget        types.Budget        `json:"budget"`
	SocialContext types.SocialContext `json:"socialContext"`
	Categories    []types.Category    `json:"categories"`
}

// FilterAnalyzer turns free text ("chill coffee date somewhere cheap")
// into FilterHints using a completion model.
type FilterAnalyzer struct {
	model  completionModel
	logger *zerolog.Logger
}

func NewFilterAnalyzer(model completionModel, logger *zerolog.Logger) *FilterAnalyzer {
	return &FilterAnalyzer{model: model, logger: logger}
}

type analyzeResponse struct {
	// Note: fields should not be pointers, or the format instructions won't include them
	MoodScore     float64  `json:"mood_score" describe:"Energy level of the request from 0 (very chill) to 100 (very hype)"`
	Budget        string   `json:"budget" describe:"Spending tier: P (cheap), PP (moderate), PPP (expensive), or none when unclear"`
	SocialContext string   `json:"social_context" describe:"Who is going: solo, with-bae (a date), barkada (friend group), or none when unclear"`
	CategoryWords []string `json:"category_words" describe:"Up to 3 words from the text hinting at what kind of place is wanted"`
}

// Analyze extracts filter hints from the text. The model's enum output
// is validated against the taxonomy; unrecognized values degrade to
// "none" rather than failing.
func (a *FilterAnalyzer) Analyze(ctx context.Context, text string) (*FilterHints, error) {
	template := prompts.NewPromptTemplate(`You are an assistant that reads a short request for a place to go out and extracts structured preferences.

## Task
Extract the requester's mood energy, budget tier, social context and place-type hints from the text. Only report what the text supports; use "none" or an empty list when the text is silent.

## Output format

{{.output_format_instructions}}

## Input

Request: {{.request}}

## Output
`, []string{
		"output_format_instructions",
		"request",
	})

	parser, err := outputparser.NewDefined(analyzeResponse{})
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	prompt, err := template.Format(map[string]any{
		"output_format_instructions": parser.GetFormatInstructions(),
		"request":                    text,
	})
	if err != nil {
		return nil, fmt.Errorf("format prompt: %w", err)
	}

	out, err := a.model.Call(ctx, prompt, llms.WithTemperature(0.0))
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}

	response, err := parseResponse(parser, out)
	if err != nil {
		a.logger.Error().
			Err(err).
			Str("output", out).
			Msg("Error parsing filter analysis response")
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return a.resolveHints(response), nil
}

func (a *FilterAnalyzer) resolveHints(response *analyzeResponse) *FilterHints {
	hints := &FilterHints{
		MoodScore:     lib.Clamp(response.MoodScore, 0, 100),
		Budget:        types.BudgetNone,
		SocialContext: types.SocialNone,
	}

	switch types.Budget(response.Budget) {
	case types.BudgetP, types.BudgetPP, types.BudgetPPP:
		hints.Budget = types.Budget(response.Budget)
	}

	switch types.SocialContext(response.SocialContext) {
	case types.SocialSolo, types.SocialWithBae, types.SocialBarkada:
		hints.SocialContext = types.SocialContext(response.SocialContext)
	}

	seen := make(map[types.Category]struct{})
	for _, word := range response.CategoryWords {
		category := taxonomy.ResolveCategory(word)
		if category == types.CategoryNone {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		hints.Categories = append(hints.Categories, category)
	}

	return hints
}

func parseResponse[T any](parser outputparser.Defined[T], response string) (*T, error) {
	// Parser expects a fenced block but model output usually omits it
	wrapped := response
	if !strings.HasPrefix(response, "```json") {
		wrapped = fmt.Sprintf("```json\n%s\n```", response)
	}
	out, err := parser.Parse(wrapped)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &out, nil
}
