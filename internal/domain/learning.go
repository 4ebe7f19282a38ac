package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningType categorizes an insight.
type LearningType string

const (
	LearningBestTime         LearningType = "BEST_TIME"
	LearningBestHashtag      LearningType = "BEST_HASHTAG"
	LearningBestTopic        LearningType = "BEST_TOPIC"
	LearningBestFormat       LearningType = "BEST_FORMAT"
	LearningAudienceInsight  LearningType = "AUDIENCE_INSIGHT"
	LearningToneAdjustment   LearningType = "TONE_ADJUSTMENT"
	LearningAvoid            LearningType = "AVOID"
	LearningPlatformSpecific LearningType = "PLATFORM_SPECIFIC"
)

func (t LearningType) Valid() bool {
	switch t {
	case LearningBestTime, LearningBestHashtag, LearningBestTopic, LearningBestFormat,
		LearningAudienceInsight, LearningToneAdjustment, LearningAvoid, LearningPlatformSpecific:
		return true
	}
	return false
}

// Learning is a single actionable insight persisted to the brand's learning
// store. Learnings are append-only; deactivation is driven by external
// curation, never by this pipeline.
type Learning struct {
	ID             int64
	OrganizationID uuid.UUID
	Type           LearningType
	Insight        string
	Evidence       string
	Confidence     float64 // [0,1]
	IsActive       bool
	CreatedAt      time.Time
}
