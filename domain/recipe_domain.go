package domain

import (
	"errors"
	"html/template"
)

var (
	MessageSuccessSuggestRecipe = "recipe generated successfully"
	MessageFailedSuggestRecipe  = "failed to generate recipe"

	ErrNoIngredients       = errors.New("please enter at least one ingredient")
	ErrGeneratorDisabled   = errors.New("recipe generation is not configured")
	ErrEmptyGeneratedReply = errors.New("no content generated")
)

type (
	RecipeRequest struct {
		Ingredients string `json:"ingredients" form:"ingredients"`
	}

	// RecipeSuggestion carries a generated recipe or, when generation
	// failed, the error text to show in its place.
	RecipeSuggestion struct {
		Ingredients string        `json:"ingredients"`
		Title       string        `json:"title,omitempty"`
		Markdown    string        `json:"markdown,omitempty"`
		Text        string        `json:"text,omitempty"`
		HTML        template.HTML `json:"-"`
		Error       string        `json:"error,omitempty"`
	}
)
