package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/vetfinder-hk/vetfinder/internal/observability"
)

// Intent is the structured interpretation of a free-text message. Every field
// is optional; a nil *Intent means extraction did not happen or failed.
type Intent struct {
	District    string `json:"district,omitempty"`
	Symptoms    string `json:"symptoms,omitempty"`
	PetType     string `json:"petType,omitempty"`
	IsEmergency *bool  `json:"isEmergency,omitempty"`
	Language    string `json:"language,omitempty"` // en or tc
}

// jsonObjectRe finds the first JSON-object-shaped substring in completion
// output, tolerating surrounding prose or markdown fencing.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// IntentExtractor turns a raw user message into a structured Intent via the
// external completion capability.
type IntentExtractor struct {
	completer Completer
	logger    *observability.Logger
}

// NewIntentExtractor creates an extractor. A nil completer is valid and makes
// Extract always return nil.
func NewIntentExtractor(completer Completer, logger *observability.Logger) *IntentExtractor {
	return &IntentExtractor{
		completer: completer,
		logger:    logger.WithComponent("intent_extractor"),
	}
}

// Extract derives an Intent from message. It returns nil, never an error,
// when no provider is configured, the provider call fails, or the completion
// contains no parseable JSON object. Failures are logged for diagnostics and
// otherwise absorbed.
func (e *IntentExtractor) Extract(ctx context.Context, message, language string) *Intent {
	if e.completer == nil {
		return nil
	}

	completion, err := e.completer.Complete(ctx, message, intentSystemInstruction(message))
	if err != nil {
		e.logger.WithContext(ctx).Warn().Err(err).Msg("Intent extraction call failed")
		return nil
	}

	raw := jsonObjectRe.FindString(completion)
	if raw == "" {
		e.logger.WithContext(ctx).Warn().Msg("Intent completion contained no JSON object")
		return nil
	}

	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		e.logger.WithContext(ctx).Warn().Err(err).Msg("Intent JSON did not parse")
		return nil
	}

	if intent.Language == "" {
		intent.Language = language
	}

	e.logger.WithContext(ctx).Debug().
		Str("district", intent.District).
		Str("symptoms", intent.Symptoms).
		Str("pet_type", intent.PetType).
		Msg("Intent extracted")
	return &intent
}

func intentSystemInstruction(message string) string {
	return fmt.Sprintf(`You are a veterinary assistant in Hong Kong. Extract the user's intent from their message.
Return a JSON object with:
- district: The HK district if mentioned (e.g. "Central", "Shatin", "中環")
- symptoms: Key medical symptoms or issues (e.g. "vomiting", "bleeding", "嘔吐")
- petType: The type of pet (e.g. "dog", "cat")
- isEmergency: boolean, true if it sounds like an emergency
- language: the language of the request ('en' or 'tc')

User message: %q`, message)
}
