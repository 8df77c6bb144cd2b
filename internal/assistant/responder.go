package assistant

import (
	"context"
	"fmt"

	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
)

// Responder produces the final conversational reply for a chat turn. With a
// configured provider it delegates to the completion capability; without one,
// or when the provider fails, it renders a deterministic bilingual template.
type Responder struct {
	completer Completer
	logger    *observability.Logger
}

// NewResponder creates a responder. A nil completer puts it permanently in
// template mode.
func NewResponder(completer Completer, logger *observability.Logger) *Responder {
	return &Responder{
		completer: completer,
		logger:    logger.WithComponent("responder"),
	}
}

// Respond builds the reply text for message given the ranked recommendations.
// petType is the caller-declared pet type used by the fallback templates;
// language selects the display language ("en" or "tc").
func (r *Responder) Respond(ctx context.Context, message string, recs []recommend.RecommendedVet, language, petType string) string {
	if r.completer != nil {
		text, err := r.completer.Complete(ctx, message, responseSystemInstruction(message, len(recs), language))
		if err == nil && text != "" {
			return text
		}
		r.logger.WithContext(ctx).Warn().Err(err).Msg("Response generation failed, using template fallback")
	}
	return fallbackText(len(recs), language, petType)
}

func responseSystemInstruction(message string, matches int, language string) string {
	displayLanguage := "English"
	if language == "tc" {
		displayLanguage = "Traditional Chinese"
	}

	return fmt.Sprintf(`You are a highly professional Hong Kong veterinary assistant.
A user has asked: %q.
We found %d veterinarian matches in our database.

Your goal is to provide:
1. A brief, empathetic acknowledgment of the situation.
2. **Basic Assessment**: Based on the symptoms described, provide a preliminary medical assessment.
   (CRITICAL: Always include a disclaimer that you are an AI assistant and this is not a substitute for professional veterinary advice).
3. **Immediate Actions**: List 2-3 specific steps the user can do right now to help their pet (e.g., "Keep them hydrated", "Restrict movement", "Check their gums").
4. **Professional Guidance**: Explain why the recommended vets below are a good fit for this specific situation.
5. **Emergency Status**: If the symptoms sound life-threatening, use a bold "URGENT" tag and tell them to call an emergency clinic immediately.

Respond in %s. Keep the tone calm, professional, and helpful.`, message, matches, displayLanguage)
}

// fallbackText is the deterministic non-AI reply, selected by display
// language and by whether any recommendation was found.
func fallbackText(matches int, language, petType string) string {
	if language == "tc" {
		if matches == 0 {
			return "我目前無法識別具體需求，您可以嘗試描述症狀或地區。"
		}
		return fmt.Sprintf("根據您的描述，我為您找到了 %d 位獸醫。以下是為您的%s推薦的結果：", matches, petLabelTC(petType))
	}

	if matches == 0 {
		return "I couldn't identify specific needs. Try describing symptoms or a district."
	}
	return fmt.Sprintf("Based on your description, I found %d vets. Here are the recommendations for your %s:", matches, petLabelEN(petType))
}

func petLabelTC(petType string) string {
	switch petType {
	case "dog":
		return "狗狗"
	case "cat":
		return "貓貓"
	default:
		return "寵物"
	}
}

func petLabelEN(petType string) string {
	if petType == "" {
		return "pet"
	}
	return petType
}
