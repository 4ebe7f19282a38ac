package learningimpl

import (
	"testing"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrefixChecker_SameTypeSamePrefix(t *testing.T) {
	checker := NewPrefixChecker()

	existing := []*domain.Learning{{
		Type:    domain.LearningBestTime,
		Insight: "Posting on Tuesdays at 3pm drives the highest engagement",
	}}

	candidate := &domain.Learning{
		Type:    domain.LearningBestTime,
		Insight: "posting on tuesdays at 3pm is your strongest slot",
	}

	assert.True(t, checker.IsDuplicate(candidate, existing))
}

func TestPrefixChecker_DifferentTypeNotDuplicate(t *testing.T) {
	checker := NewPrefixChecker()

	existing := []*domain.Learning{{
		Type:    domain.LearningBestTime,
		Insight: "Posting on Tuesdays at 3pm drives the highest engagement",
	}}

	candidate := &domain.Learning{
		Type:    domain.LearningAudienceInsight,
		Insight: "Posting on Tuesdays at 3pm resonates with your audience",
	}

	assert.False(t, checker.IsDuplicate(candidate, existing))
}

func TestPrefixChecker_DifferentOpeningSlipsThrough(t *testing.T) {
	checker := NewPrefixChecker()

	existing := []*domain.Learning{{
		Type:    domain.LearningBestTime,
		Insight: "Posting on Tuesdays at 3pm drives the highest engagement",
	}}

	// Same meaning, different first 30 characters: passes the heuristic.
	candidate := &domain.Learning{
		Type:    domain.LearningBestTime,
		Insight: "Tuesday 3pm posts drive the highest engagement",
	}

	assert.False(t, checker.IsDuplicate(candidate, existing))
}

func TestPrefixChecker_EmptyInsightNeverDuplicate(t *testing.T) {
	checker := NewPrefixChecker()

	existing := []*domain.Learning{{Type: domain.LearningAvoid, Insight: "anything"}}
	candidate := &domain.Learning{Type: domain.LearningAvoid, Insight: "   "}

	assert.False(t, checker.IsDuplicate(candidate, existing))
}

func TestPrefixChecker_ShortInsightsMatchWhole(t *testing.T) {
	checker := NewPrefixChecker()

	existing := []*domain.Learning{{Type: domain.LearningBestHashtag, Insight: "#growth works well"}}
	candidate := &domain.Learning{Type: domain.LearningBestHashtag, Insight: "#growth works"}

	assert.True(t, checker.IsDuplicate(candidate, existing))
}
