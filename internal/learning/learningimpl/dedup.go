package learningimpl

import (
	"strings"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
)

// DuplicateChecker decides whether a candidate learning duplicates one the
// brand already has. Kept behind an interface so the prefix heuristic can be
// swapped for embedding similarity without touching the generation pipeline.
type DuplicateChecker interface {
	IsDuplicate(candidate *domain.Learning, existing []*domain.Learning) bool
}

const dedupPrefixLen = 30

// PrefixChecker is a cheap heuristic: a candidate is a duplicate when an
// existing active learning of the same type contains the candidate insight's
// first 30 characters, case-insensitive. Near-duplicates with different
// openings slip through; that is an accepted limitation.
type PrefixChecker struct{}

func NewPrefixChecker() *PrefixChecker {
	return &PrefixChecker{}
}

var _ DuplicateChecker = (*PrefixChecker)(nil)

func (c *PrefixChecker) IsDuplicate(candidate *domain.Learning, existing []*domain.Learning) bool {
	prefix := insightPrefix(candidate.Insight)
	if prefix == "" {
		return false
	}

	for _, l := range existing {
		if l.Type != candidate.Type {
			continue
		}
		if strings.Contains(strings.ToLower(l.Insight), prefix) {
			return true
		}
	}
	return false
}

func insightPrefix(insight string) string {
	runes := []rune(strings.ToLower(strings.TrimSpace(insight)))
	if len(runes) > dedupPrefixLen {
		runes = runes[:dedupPrefixLen]
	}
	return string(runes)
}
