// Package content analyzes post text for structural features. It is pure:
// no network access, no state, identical input always yields identical output.
package content

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brandbrain/metrics-pipeline/internal/domain"
)

var (
	hashtagRe  = regexp.MustCompile(`#\w+`)
	urlRe      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	questionRe = regexp.MustCompile(`\?`)

	// Common emoji blocks: emoticons, pictographs, transport, supplemental
	// symbols, dingbats, misc symbols.
	emojiRe = regexp.MustCompile(`[\x{1F300}-\x{1F5FF}\x{1F600}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
)

// ctaPatterns is the fixed phrase list for call-to-action detection.
var ctaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bclick\b`),
	regexp.MustCompile(`(?i)\bsign\s*up\b`),
	regexp.MustCompile(`(?i)\blearn\s*more\b`),
	regexp.MustCompile(`(?i)\bcheck\s*(out|it)\b`),
	regexp.MustCompile(`(?i)\bvisit\b`),
	regexp.MustCompile(`(?i)\bget\s*(started|your|the)\b`),
	regexp.MustCompile(`(?i)\btry\b`),
	regexp.MustCompile(`(?i)\bdownload\b`),
	regexp.MustCompile(`(?i)\bregister\b`),
	regexp.MustCompile(`(?i)\bjoin\b`),
	regexp.MustCompile(`(?i)\bsubscribe\b`),
	regexp.MustCompile(`(?i)\bfollow\b`),
	regexp.MustCompile(`(?i)\bshop\s*now\b`),
	regexp.MustCompile(`(?i)\bbook\s*(now|a)\b`),
	regexp.MustCompile(`(?i)\blink\s*in\s*bio\b`),
	regexp.MustCompile(`(?i)\bdm\s*(us|me)\b`),
	regexp.MustCompile(`(?i)\bcomment\s*below\b`),
	regexp.MustCompile(`(?i)\btag\s*(a|someone)\b`),
}

// Analyze computes the structural features of a post's text and timing.
func Analyze(text string, publishedAt time.Time, hasMedia bool) domain.ContentFeatures {
	hashtags := hashtagRe.FindAllString(text, -1)

	return domain.ContentFeatures{
		Length:       utf8.RuneCountInString(text),
		HasHashtags:  len(hashtags) > 0,
		HashtagCount: len(hashtags),
		HasEmojis:    emojiRe.MatchString(text),
		HasLinks:     urlRe.MatchString(text),
		HasQuestion:  questionRe.MatchString(text),
		HasCTA:       hasCTA(text),
		HasMedia:     hasMedia,
		DayOfWeek:    int(publishedAt.Weekday()),
		HourOfDay:    publishedAt.Hour(),
	}
}

// Hashtags returns the hashtags present in the text, lowercased, in order of
// appearance, without duplicates.
func Hashtags(text string) []string {
	matches := hashtagRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func hasCTA(text string) bool {
	for _, re := range ctaPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
