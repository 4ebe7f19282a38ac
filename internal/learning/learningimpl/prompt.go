package learningimpl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brandbrain/metrics-pipeline/internal/content"
	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/llm"
	"github.com/brandbrain/metrics-pipeline/pkg/formatter"
)

const systemPrompt = `You are a social media performance analyst. You study a brand's posting
statistics and produce actionable learnings. Respond with a JSON object of the shape
{"learnings":[{"type":"...","insight":"...","evidence":"...","confidence":0.0}]}.
Allowed types: BEST_TIME, BEST_HASHTAG, BEST_TOPIC, BEST_FORMAT, AUDIENCE_INSIGHT,
TONE_ADJUSTMENT, AVOID, PLATFORM_SPECIFIC. Confidence is between 0 and 1.
Produce at most 5 learnings. Every insight must be backed by the numbers given.
Do not repeat any of the existing learnings you are shown.`

// splitSamples picks the top-20% and bottom-20% posts by engagement rate as
// contrastive examples. With n >= 5 both slices hold at least one post.
func splitSamples(snaps []*domain.MetricSnapshot) (top, bottom []*domain.MetricSnapshot) {
	ranked := make([]*domain.MetricSnapshot, len(snaps))
	copy(ranked, snaps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementRate > ranked[j].EngagementRate
	})

	n := len(ranked) / 5
	if n < 1 {
		n = 1
	}

	return ranked[:n], ranked[len(ranked)-n:]
}

// hashtagFrequency counts hashtag occurrences across the samples.
func hashtagFrequency(samples []*domain.MetricSnapshot) map[string]int {
	freq := make(map[string]int)
	for _, snap := range samples {
		for _, tag := range content.Hashtags(snap.Content) {
			freq[tag]++
		}
	}
	return freq
}

func formatHashtags(freq map[string]int) string {
	if len(freq) == 0 {
		return "none"
	}

	type entry struct {
		tag   string
		count int
	}
	entries := make([]entry, 0, len(freq))
	for tag, count := range freq {
		entries = append(entries, entry{tag, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].tag < entries[j].tag
	})

	if len(entries) > 5 {
		entries = entries[:5]
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.tag, e.count))
	}
	return strings.Join(parts, ", ")
}

// bestWorstDay returns the weekday names with the highest and lowest average
// engagement. The maps only hold days that had posts.
func bestWorstDay(byDay map[time.Weekday]domain.GroupStat) (best, worst string) {
	bestRate, worstRate := -1.0, -1.0
	for day, stat := range byDay {
		if bestRate < 0 || stat.AvgEngagement > bestRate {
			bestRate = stat.AvgEngagement
			best = day.String()
		}
		if worstRate < 0 || stat.AvgEngagement < worstRate {
			worstRate = stat.AvgEngagement
			worst = day.String()
		}
	}
	return best, worst
}

func bestWorstHour(byHour map[int]domain.GroupStat) (best, worst int) {
	bestRate, worstRate := -1.0, -1.0
	best, worst = -1, -1
	for hour, stat := range byHour {
		if bestRate < 0 || stat.AvgEngagement > bestRate {
			bestRate = stat.AvgEngagement
			best = hour
		}
		if worstRate < 0 || stat.AvgEngagement < worstRate {
			worstRate = stat.AvgEngagement
			worst = hour
		}
	}
	return best, worst
}

func (g *GeneratorImpl) buildMessages(agg *domain.AggregatedMetrics, top, bottom []*domain.MetricSnapshot, existing []*domain.Learning) []llm.Message {
	maxLen := g.Config.Learning.SampleMaxLen

	var sb strings.Builder

	sb.WriteString("PERFORMANCE SUMMARY\n")
	fmt.Fprintf(&sb, "Posts analyzed: %d\n", agg.TotalPosts)
	fmt.Fprintf(&sb, "Total impressions: %s\n", formatter.FormatNumber(agg.TotalImpressions))
	fmt.Fprintf(&sb, "Total engagements: %s\n", formatter.FormatNumber(agg.TotalEngagements))
	fmt.Fprintf(&sb, "Average engagement rate: %s\n", formatter.FormatPercent(agg.AvgEngagement))

	bestDay, worstDay := bestWorstDay(agg.ByDay)
	bestHour, worstHour := bestWorstHour(agg.ByHour)
	sb.WriteString("\nTIMING\n")
	fmt.Fprintf(&sb, "Best day: %s, worst day: %s\n", bestDay, worstDay)
	if bestHour >= 0 {
		fmt.Fprintf(&sb, "Best hour: %02d:00, worst hour: %02d:00\n", bestHour, worstHour)
	}

	sb.WriteString("\nCONTENT FORMATS (avg engagement, descending)\n")
	for _, perf := range agg.ByFormat {
		fmt.Fprintf(&sb, "- %s: %s over %d posts\n", perf.Format, formatter.FormatPercent(perf.AvgEngagement), perf.Count)
	}

	sb.WriteString("\nPLATFORMS\n")
	for _, perf := range agg.ByPlatform {
		fmt.Fprintf(&sb, "- %s: %s avg rate, %s impressions, %d posts\n",
			perf.Platform, formatter.FormatPercent(perf.AvgEngagement),
			formatter.FormatNumber(perf.TotalImpressions), perf.Count)
	}

	fmt.Fprintf(&sb, "\nTOP PERFORMING POSTS (hashtags: %s)\n", formatHashtags(hashtagFrequency(top)))
	for _, snap := range top {
		fmt.Fprintf(&sb, "- [%s, %s] %s\n", snap.Platform, formatter.FormatPercent(snap.EngagementRate),
			formatter.Truncate(snap.Content, maxLen))
	}

	fmt.Fprintf(&sb, "\nWORST PERFORMING POSTS (hashtags: %s)\n", formatHashtags(hashtagFrequency(bottom)))
	for _, snap := range bottom {
		fmt.Fprintf(&sb, "- [%s, %s] %s\n", snap.Platform, formatter.FormatPercent(snap.EngagementRate),
			formatter.Truncate(snap.Content, maxLen))
	}

	sb.WriteString("\nEXISTING LEARNINGS (do not repeat these)\n")
	if len(existing) == 0 {
		sb.WriteString("none\n")
	}
	for _, l := range existing {
		fmt.Fprintf(&sb, "- [%s] %s\n", l.Type, l.Insight)
	}

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: sb.String()},
	}
}
