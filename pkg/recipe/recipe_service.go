package recipe

import (
	"bytes"
	"context"
	"fmt"
	"foodloop/domain"
	"foodloop/internal/metrics"
	"github.com/gofiber/fiber/v2/log"
	stripmd "github.com/writeas/go-strip-markdown"
	"github.com/yuin/goldmark"
	"html/template"
	"strings"
)

const promptTemplate = `I have these ingredients: %s.
Suggest a simple recipe with:
- Recipe Name
- Ingredients
- Steps
- Prep Time
- Difficulty Level
`

type (
	// TextGenerator turns a prompt into markdown text.
	TextGenerator interface {
		GenerateContent(ctx context.Context, prompt string) (string, error)
	}

	RecipeService interface {
		Suggest(ctx context.Context, req domain.RecipeRequest) domain.RecipeSuggestion
	}

	recipeService struct {
		generator TextGenerator
		markdown  goldmark.Markdown
	}
)

func NewRecipeService(generator TextGenerator) RecipeService {
	return &recipeService{
		generator: generator,
		markdown:  goldmark.New(),
	}
}

func BuildPrompt(ingredients string) string {
	return fmt.Sprintf(promptTemplate, ingredients)
}

// Suggest never fails the request: generator and rendering errors are
// reported in the suggestion's Error field.
func (s *recipeService) Suggest(ctx context.Context, req domain.RecipeRequest) domain.RecipeSuggestion {
	ingredients := strings.TrimSpace(req.Ingredients)
	res := domain.RecipeSuggestion{Ingredients: ingredients}
	if ingredients == "" {
		res.Error = domain.ErrNoIngredients.Error()
		return res
	}

	reply, err := s.generator.GenerateContent(ctx, BuildPrompt(ingredients))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = domain.ErrEmptyGeneratedReply
	}
	metrics.RecipeGenerate.With(metrics.Result(err)).Inc()
	if err != nil {
		log.Warnf("recipe generation failed: %v", err)
		res.Error = "Error: " + err.Error()
		return res
	}

	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(reply), &html); err != nil {
		res.Error = "Error: " + err.Error()
		return res
	}

	res.Markdown = reply
	res.HTML = template.HTML(html.String())
	res.Text = strings.TrimSpace(stripmd.Strip(reply))
	res.Title = firstLine(res.Text)
	return res
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
