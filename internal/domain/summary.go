package domain

// CollectStats summarizes one metric-collection pass.
type CollectStats struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Errors    int `json:"errors"`
}

// Add merges another pass's counters into this one.
func (s *CollectStats) Add(other CollectStats) {
	s.Processed += other.Processed
	s.Updated += other.Updated
	s.Errors += other.Errors
}

// GenerationResult summarizes learning generation for a single brand.
type GenerationResult struct {
	Generated int         `json:"generated"`
	Learnings []*Learning `json:"learnings"`
}

// GenerationSummary summarizes a batch learning-generation run across brands.
type GenerationSummary struct {
	Organizations int `json:"organizations"`
	Generated     int `json:"generated"`
	Failed        int `json:"failed"`
}
