package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/couchtour/phishstats/pkg/llm"
)

// Section is one narrative block of the generated story. The model labels each
// section with how well the underlying data supports it.
type Section struct {
	Summary    string `json:"summary"`
	Confidence string `json:"confidence" enums:"high,medium,low"`
}

// Story is the five-section shape the model is instructed to produce. It is
// documented for the API surface but deliberately not enforced on the reply.
type Story struct {
	AttendanceOverview Section `json:"attendance_overview"`
	MusicalIdentity    Section `json:"musical_identity"`
	EraJourney         Section `json:"era_journey"`
	VenueStory         Section `json:"venue_story"`
	StandoutMoments    Section `json:"standout_moments"`
}

// Service describes the application use case for narrative generation.
type Service interface {
	Generate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

type service struct {
	llm llm.ChatModel
}

// NewService creates the default implementation.
func NewService(model llm.ChatModel) Service {
	return &service{llm: model}
}

// Generate forwards the caller's payload as the sole user message and relays
// the model's JSON reply. The payload is opaque: no shape is assumed or
// validated, and nothing is persisted.
func (s *service) Generate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	answer, err := s.llm.Generate(ctx, SystemPrompt, string(payload))
	if err != nil {
		return nil, err
	}
	return decodeStory(answer)
}

// decodeStory parses the model's reply text as JSON and returns it verbatim.
// The reply format is a brittle contract with the upstream API, so the
// extraction is kept behind this single seam.
func decodeStory(text string) (json.RawMessage, error) {
	raw := json.RawMessage(strings.TrimSpace(text))
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse model reply as JSON: %w", err)
	}
	return raw, nil
}
