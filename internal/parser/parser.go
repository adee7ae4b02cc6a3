// Package parser extracts structured job drafts from free-form pasted text.
//
// Parsing never fails: any input, including empty or binary-looking text,
// yields a usable draft with generic fallbacks for fields that could not be
// extracted. A generic pass always runs; a platform-specific pass refines
// the result when the caller knows which platform the text came from.
package parser

import (
	"regexp"
	"strings"

	"github.com/gigdash/gigdash/internal/domain"
)

// maxTitleLength caps draft titles.
const maxTitleLength = 100

// genericTitle is used when the input has no usable first line.
const genericTitle = "Parsed Job"

// genericAddress is used when neither the address patterns nor the platform
// fallback produced anything.
const genericAddress = "Job location"

// payoutPattern matches dollar amounts. The draft payout is the largest
// amount found; the assumption that the biggest number is the base pay (not
// a tip or bonus) is a documented heuristic, not a guarantee.
var payoutPattern = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)

// addressPatterns are tried in priority order; the first match wins.
// Street addresses beat landmarks beat business-category names.
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\s+[A-Za-z\s]+(?:St|Ave|Blvd|Rd|Dr|Way|Pl|Street|Avenue|Boulevard|Road|Drive))`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Mall|Plaza|Center|Square))`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+ (?:Store|Shop|Restaurant|Cafe))`),
}

// Parse turns a block of raw text into a job draft. The platform argument
// may be empty; unknown platform identifiers are accepted and handled
// generically.
func Parse(text, platform string) domain.Draft {
	draft := domain.Draft{
		Title:             firstLine(text),
		Payout:            extractPayout(text),
		Address:           extractAddress(text),
		EstimatedDuration: domain.DefaultDurationMinutes,
	}

	prof, known := profileFor(platform)
	if known {
		// Platform extractors always produce a non-empty title and
		// description, so they take precedence over the generic pass.
		draft.Title = prof.title(text)
		draft.Description = prof.description(text)
		draft.EstimatedDuration = prof.duration(text)
		if draft.Address == "" {
			draft.Address = prof.fallbackAddress
		}
	}

	if draft.Address == "" {
		draft.Address = genericAddress
	}
	if draft.Description == "" {
		source := platform
		if source == "" {
			source = "clipboard"
		}
		draft.Description = "Parsed from " + source + " text"
	}

	draft.Platform = platform
	if draft.Platform == "" {
		draft.Platform = domain.PlatformManual
	}
	draft.Source = "clipboard"
	draft.Title = truncate(draft.Title, maxTitleLength)

	return draft
}

// firstLine returns the first non-blank line, trimmed, or the generic title.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return genericTitle
}

// extractPayout finds the largest dollar amount in the text and returns its
// digits exactly as written ("$12.50" yields "12.50"). Returns "0" when no
// amount is present.
func extractPayout(text string) string {
	matches := payoutPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "0"
	}

	best := matches[0][1]
	bestValue := domain.ParseAmount(best)
	for _, m := range matches[1:] {
		if v := domain.ParseAmount(m[1]); v > bestValue {
			best = m[1]
			bestValue = v
		}
	}
	return best
}

// extractAddress tries the address patterns in priority order and returns
// the first trimmed match, or empty when nothing address-like appears.
func extractAddress(text string) string {
	for _, pattern := range addressPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
