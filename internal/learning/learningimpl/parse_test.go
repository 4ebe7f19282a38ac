package learningimpl

import (
	"testing"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates_PlainJSON(t *testing.T) {
	reply := `{"learnings":[{"type":"BEST_TIME","insight":"Morning posts win","evidence":"6.5% vs 3.1%","confidence":0.8}]}`

	candidates, err := parseCandidates(reply)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, domain.LearningBestTime, candidates[0].Type)
	assert.Equal(t, "Morning posts win", candidates[0].Insight)
	assert.Equal(t, "6.5% vs 3.1%", candidates[0].Evidence)
	assert.InDelta(t, 0.8, candidates[0].Confidence, 1e-9)
}

func TestParseCandidates_StripsMarkdownFences(t *testing.T) {
	reply := "```json\n{\"learnings\":[{\"type\":\"AVOID\",\"insight\":\"Skip link dumps\",\"confidence\":0.5}]}\n```"

	candidates, err := parseCandidates(reply)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.LearningAvoid, candidates[0].Type)
}

func TestParseCandidates_SkipsUnknownTypesAndEmptyInsights(t *testing.T) {
	reply := `{"learnings":[
		{"type":"BEST_UNICORN","insight":"should be dropped","confidence":0.9},
		{"type":"BEST_FORMAT","insight":"","confidence":0.9},
		{"type":"best_format","insight":"Video outperforms text","confidence":0.9}
	]}`

	candidates, err := parseCandidates(reply)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.LearningBestFormat, candidates[0].Type)
}

func TestParseCandidates_ClampsConfidence(t *testing.T) {
	reply := `{"learnings":[
		{"type":"BEST_TOPIC","insight":"Product tips resonate","confidence":1.7},
		{"type":"AVOID","insight":"Avoid reposts","confidence":-0.3}
	]}`

	candidates, err := parseCandidates(reply)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1.0, candidates[0].Confidence)
	assert.Equal(t, 0.0, candidates[1].Confidence)
}

func TestParseCandidates_NoJSONObject(t *testing.T) {
	_, err := parseCandidates("sorry, I can only answer in prose")
	assert.ErrorIs(t, err, errors.ErrMalformedResponse)
}

func TestParseCandidates_InvalidJSON(t *testing.T) {
	_, err := parseCandidates(`{"learnings":[{"type":"AVOID","insight":`)
	assert.ErrorIs(t, err, errors.ErrMalformedResponse)
}

func TestParseCandidates_EmptyList(t *testing.T) {
	candidates, err := parseCandidates(`{"learnings":[]}`)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
