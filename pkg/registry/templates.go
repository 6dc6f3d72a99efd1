// This file validates the template registry (templates.json): system
// prompts, prompt categories, and welcome screens.
//
// # Checks
//
//   - systemPrompts: id presence and uniqueness, name and prompt presence,
//     prompt length bound, XSS scan over name/prompt/category/icon
//   - promptCategories: id and label presence
//   - welcomeScreens: id presence and uniqueness, heading presence, XSS
//     scan over heading/subtitle/name, and per-card action vocabulary plus
//     XSS scan over title/description/icon

package registry

import (
	"fmt"

	"github.com/aiscouncil/registry-lint/pkg/logger"
)

var templatesLog = logger.New("registry:templates")

// MaxPromptLength bounds a system prompt's text.
const MaxPromptLength = 10000

// ValidateTemplatesFile loads and validates a template registry file.
// Structural failures produce a single-element error list.
func ValidateTemplatesFile(path string) []string {
	doc, err := LoadDocument(path)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidateTemplates(doc)
}

// ValidateTemplates validates a decoded template registry document and
// returns the complete list of violations. All three sections are optional;
// absent sections are not errors.
func ValidateTemplates(doc map[string]any) []string {
	var errors []string

	if _, ok := doc["version"]; !ok {
		errors = append(errors, "Missing top-level 'version' field")
	}

	errors = append(errors, validateSystemPrompts(doc)...)
	errors = append(errors, validatePromptCategories(doc)...)
	errors = append(errors, validateWelcomeScreens(doc)...)

	templatesLog.Printf("Template registry validation complete: %d error(s)", len(errors))
	return errors
}

func validateSystemPrompts(doc map[string]any) []string {
	raw, ok := doc["systemPrompts"]
	if !ok {
		return nil
	}
	prompts, isList := raw.([]any)
	if !isList {
		return []string{"'systemPrompts' must be an array"}
	}

	templatesLog.Printf("Validating %d system prompts", len(prompts))

	var errors []string
	seenIDs := make(map[string]bool)
	for i, entry := range prompts {
		prompt, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("SystemPrompt [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("SystemPrompt", i, stringField(prompt, "id", "?"))

		if idVal, ok := prompt["id"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'id'", prefix))
		} else if id := fmt.Sprintf("%v", idVal); seenIDs[id] {
			errors = append(errors, fmt.Sprintf("%s: duplicate prompt ID", prefix))
		} else {
			seenIDs[id] = true
		}

		if _, ok := prompt["name"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'name'", prefix))
		}

		if textVal, ok := prompt["prompt"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'prompt'", prefix))
		} else if text, isStr := textVal.(string); isStr && len(text) > MaxPromptLength {
			errors = append(errors, fmt.Sprintf("%s: prompt exceeds %d characters", prefix, MaxPromptLength))
		}

		errors = append(errors, scanFieldsForXSS(prompt, prefix, "name", "prompt", "category", "icon")...)
	}
	return errors
}

func validatePromptCategories(doc map[string]any) []string {
	raw, ok := doc["promptCategories"]
	if !ok {
		return nil
	}
	categories, isList := raw.([]any)
	if !isList {
		return []string{"'promptCategories' must be an array"}
	}

	var errors []string
	for i, entry := range categories {
		cat, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("PromptCategory [%d]: must be an object", i))
			continue
		}
		if _, ok := cat["id"]; !ok {
			errors = append(errors, fmt.Sprintf("PromptCategory [%d]: missing 'id'", i))
		}
		if _, ok := cat["label"]; !ok {
			errors = append(errors, fmt.Sprintf("PromptCategory [%d]: missing 'label'", i))
		}
	}
	return errors
}

func validateWelcomeScreens(doc map[string]any) []string {
	raw, ok := doc["welcomeScreens"]
	if !ok {
		return nil
	}
	screens, isList := raw.([]any)
	if !isList {
		return []string{"'welcomeScreens' must be an array"}
	}

	templatesLog.Printf("Validating %d welcome screens", len(screens))

	var errors []string
	seenIDs := make(map[string]bool)
	for i, entry := range screens {
		screen, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("WelcomeScreen [%d]: must be an object", i))
			continue
		}
		prefix := recordPrefix("WelcomeScreen", i, stringField(screen, "id", "?"))

		if idVal, ok := screen["id"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'id'", prefix))
		} else if id := fmt.Sprintf("%v", idVal); seenIDs[id] {
			errors = append(errors, fmt.Sprintf("%s: duplicate screen ID", prefix))
		} else {
			seenIDs[id] = true
		}

		if _, ok := screen["heading"]; !ok {
			errors = append(errors, fmt.Sprintf("%s: missing 'heading'", prefix))
		}

		errors = append(errors, scanFieldsForXSS(screen, prefix, "heading", "subtitle", "name")...)
		errors = append(errors, validateWelcomeCards(screen, prefix)...)
	}
	return errors
}

func validateWelcomeCards(screen map[string]any, prefix string) []string {
	raw, ok := screen["cards"]
	if !ok {
		return nil
	}
	cards, isList := raw.([]any)
	if !isList {
		return []string{fmt.Sprintf("%s: 'cards' must be an array", prefix)}
	}

	var errors []string
	for j, entry := range cards {
		cardPrefix := fmt.Sprintf("%s card [%d]", prefix, j)
		card, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, fmt.Sprintf("%s: must be an object", cardPrefix))
			continue
		}

		// Empty action means the card is informational; only non-empty
		// actions are vocabulary-checked.
		if action, _ := card["action"].(string); action != "" && !isAllowed(action, AllowedWelcomeActions) {
			errors = append(errors, fmt.Sprintf("%s: invalid action '%s' (allowed: %s)", cardPrefix, action, allowedList(AllowedWelcomeActions)))
		}

		errors = append(errors, scanFieldsForXSS(card, cardPrefix, "title", "description", "icon")...)
	}
	return errors
}

// scanFieldsForXSS runs the XSS denylist over the named string fields,
// reporting one error per offending field. Absent or non-string fields are
// skipped.
func scanFieldsForXSS(record map[string]any, prefix string, fields ...string) []string {
	var errors []string
	for _, field := range fields {
		if val, ok := record[field].(string); ok && ContainsXSS(val) {
			errors = append(errors, fmt.Sprintf("%s: field '%s' contains XSS pattern", prefix, field))
		}
	}
	return errors
}
