package nlp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestFilterAnalyzer_Analyze(t *testing.T) {
	logger := zerolog.Nop()
	model := &fakeModel{response: `{
		"mood_score": 20,
		"budget": "P",
		"social_context": "with-bae",
		"category_words": ["coffee"]
	}`}

	analyzer := NewFilterAnalyzer(model, &logger)

	hints, err := analyzer.Analyze(context.Background(), "chill coffee date somewhere cheap")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if hints.MoodScore != 20 {
		t.Errorf("MoodScore = %v, want 20", hints.MoodScore)
	}
	if hints.Budget != types.BudgetP {
		t.Errorf("Budget = %v, want P", hints.Budget)
	}
	if hints.SocialContext != types.SocialWithBae {
		t.Errorf("SocialContext = %v, want with-bae", hints.SocialContext)
	}
	if len(hints.Categories) != 1 || hints.Categories[0] != types.CategoryFood {
		t.Errorf("Categories = %v, want [food]", hints.Categories)
	}
}

func TestFilterAnalyzer_DegradesUnknownEnums(t *testing.T) {
	logger := zerolog.Nop()
	model := &fakeModel{response: `{
		"mood_score": 150,
		"budget": "PPPP",
		"social_context": "everyone",
		"category_words": ["zzzzqq"]
	}`}

	analyzer := NewFilterAnalyzer(model, &logger)

	hints, err := analyzer.Analyze(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if hints.MoodScore != 100 {
		t.Errorf("MoodScore = %v, want clamped to 100", hints.MoodScore)
	}
	if hints.Budget != types.BudgetNone {
		t.Errorf("Budget = %v, want none", hints.Budget)
	}
	if hints.SocialContext != types.SocialNone {
		t.Errorf("SocialContext = %v, want none", hints.SocialContext)
	}
	if len(hints.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", hints.Categories)
	}
}

func TestFilterAnalyzer_ModelErrorPropagates(t *testing.T) {
	logger := zerolog.Nop()
	analyzer := NewFilterAnalyzer(&fakeModel{err: errors.New("model down")}, &logger)

	if _, err := analyzer.Analyze(context.Background(), "text"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestPlaceDescriber_NilModelUsesTemplate(t *testing.T) {
	logger := zerolog.Nop()
	describer := NewPlaceDescriber(nil, &logger)

	place := types.PlaceCandidate{Name: "Kapehan sa Kanto", Types: []string{"cafe"}, Rating: 4.4, ReviewCount: 812}
	description := describer.Describe(context.Background(), place, types.FilterSpec{Mood: 10})

	if description == "" {
		t.Fatal("expected a templated description")
	}
}

func TestPlaceDescriber_ModelFailureFallsBack(t *testing.T) {
	logger := zerolog.Nop()
	describer := NewPlaceDescriber(&fakeModel{err: errors.New("model down")}, &logger)

	place := types.PlaceCandidate{Name: "Tagpuan", Types: []string{"bar"}}
	description := describer.Describe(context.Background(), place, types.FilterSpec{})

	if description == "" {
		t.Fatal("expected a fallback description, got empty")
	}
}

func TestCachedModel_MemoizesCompletions(t *testing.T) {
	logger := zerolog.Nop()
	cache := NewCompletionCache(time.Minute, &logger)
	inner := &fakeModel{response: "hello"}
	model := NewCachedModel(inner, cache)

	for range 3 {
		out, err := model.Call(context.Background(), "same prompt")
		if err != nil {
			t.Fatal(err)
		}
		if out != "hello" {
			t.Errorf("Call() = %q", out)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner model called %d times, want 1", inner.calls)
	}
}
