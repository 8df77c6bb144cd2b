package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
)

// ErrEmptyMessage indicates a chat request without a message. This is the
// only client error of the chat flow.
var ErrEmptyMessage = errors.New("message is required")

// ChatRequest is one inbound chat turn.
type ChatRequest struct {
	Message  string `json:"message"`
	PetType  string `json:"petType,omitempty"`
	Language string `json:"language,omitempty"` // en or tc, defaults to en
}

// ChatResponse is the full result of a chat turn: the reply text, the ranked
// recommendations behind it, and the extracted intent (echoed for UI
// feedback; nil when extraction was unavailable or failed).
type ChatResponse struct {
	ID              string                     `json:"id"`
	Text            string                     `json:"text"`
	Recommendations []recommend.RecommendedVet `json:"recommendations"`
	Intent          *Intent                    `json:"intent"`
}

// Service orchestrates a chat turn: intent extraction, query construction,
// ranking and response generation, in that order. The two provider calls of a
// turn are sequential because response generation depends on the ranked
// results derived from the extracted intent.
type Service struct {
	extractor *IntentExtractor
	responder *Responder
	ranker    *recommend.Ranker
	logger    *observability.Logger
	limit     int
}

// NewService wires the chat flow together. limit <= 0 selects the default
// recommendation limit.
func NewService(extractor *IntentExtractor, responder *Responder, ranker *recommend.Ranker, logger *observability.Logger, limit int) *Service {
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	return &Service{
		extractor: extractor,
		responder: responder,
		ranker:    ranker,
		logger:    logger.WithComponent("chat"),
		limit:     limit,
	}
}

// Chat runs one conversational turn. Only a missing message is an error;
// provider failures degrade to raw-message ranking and template replies.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	intent := s.extractor.Extract(ctx, req.Message, language)
	query := contextualQuery(req, intent)
	recs := s.ranker.Recommend(ctx, query, s.limit)
	text := s.responder.Respond(ctx, req.Message, recs, language, req.PetType)

	s.logger.WithContext(ctx).Info().
		Bool("intent_extracted", intent != nil).
		Str("query", query).
		Int("matches", len(recs)).
		Msg("Chat turn completed")

	return &ChatResponse{
		ID:              uuid.NewString(),
		Text:            text,
		Recommendations: recs,
		Intent:          intent,
	}, nil
}

// contextualQuery derives the ranking query: the extracted symptoms, district
// and pet type when intent is available, otherwise the raw message. The
// caller-declared pet type backs up a missing extracted one.
func contextualQuery(req ChatRequest, intent *Intent) string {
	if intent == nil {
		return joinNonEmpty(req.Message, req.PetType)
	}

	petType := intent.PetType
	if petType == "" {
		petType = req.PetType
	}
	return joinNonEmpty(intent.Symptoms, intent.District, petType)
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
