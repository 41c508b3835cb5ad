// Package prompts holds the default prompt templates shipped with FoodieSpot
// and renders them with text/template.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Names lists every prompt with an embedded default.
func Names() []string {
	return []string{
		driven.PromptIntent,
		driven.PromptParameterExtraction,
		driven.PromptResponseGeneration,
		driven.PromptErrorExplanation,
		driven.PromptRecommendation,
	}
}

// Default returns the embedded template for name.
func Default(name string) (string, error) {
	data, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("no default prompt %q: %w", name, err)
	}
	return string(data), nil
}

// Defaults returns every embedded template keyed by name.
func Defaults() map[string]string {
	defaults := make(map[string]string, len(Names()))
	for _, name := range Names() {
		if text, err := Default(name); err == nil {
			defaults[name] = text
		}
	}
	return defaults
}

// Render executes a template against data.
// Missing fields render as empty strings.
func Render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing prompt %s: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering prompt %s: %w", name, err)
	}
	return b.String(), nil
}
