package learningimpl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/pkg/errors"
)

type candidatePayload struct {
	Type       string  `json:"type"`
	Insight    string  `json:"insight"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

type learningsPayload struct {
	Learnings []candidatePayload `json:"learnings"`
}

// parseCandidates extracts the structured learnings from the model reply.
// The reply is expected to be a JSON object; anything wrapped around it
// (markdown fences, prose) is stripped by locating the outermost braces.
func parseCandidates(reply string) ([]*domain.Learning, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, errors.Wrap(errors.ErrMalformedResponse, "no JSON object in model reply")
	}

	var payload learningsPayload
	if err := json.Unmarshal([]byte(reply[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedResponse, err)
	}

	candidates := make([]*domain.Learning, 0, len(payload.Learnings))
	for _, c := range payload.Learnings {
		learningType := domain.LearningType(strings.ToUpper(strings.TrimSpace(c.Type)))
		if !learningType.Valid() {
			continue
		}

		insight := strings.TrimSpace(c.Insight)
		if insight == "" {
			continue
		}

		confidence := c.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		candidates = append(candidates, &domain.Learning{
			Type:       learningType,
			Insight:    insight,
			Evidence:   strings.TrimSpace(c.Evidence),
			Confidence: confidence,
		})
	}

	return candidates, nil
}
