// Package classify maps free text to fixed labels by case-insensitive
// substring matching against static keyword tables.
package classify

import (
	"strings"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

const maxRelevanceScore = 10

// DetectModality returns the first modality whose keywords occur in text
func DetectModality(text string) *domain.Modality {
	lower := strings.ToLower(text)
	for _, entry := range modalityTable {
		if containsAny(lower, entry.Keywords) {
			m := entry.Modality
			return &m
		}
	}
	return nil
}

// CalculateUrgency grades text by the number of distinct urgency keywords it contains
func CalculateUrgency(text string) domain.Urgency {
	switch n := countHits(strings.ToLower(text), urgencyKeywords); {
	case n >= 2:
		return domain.UrgencyHigh
	case n == 1:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// DetectContractType returns the first contract keyword found in text
func DetectContractType(text string) *string {
	lower := strings.ToLower(text)
	for _, kw := range contractKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found := kw
			return &found
		}
	}
	return nil
}

// DetectPlatform returns the staffing platform domain contained in url
func DetectPlatform(url string) string {
	for _, p := range staffingPlatforms {
		if strings.Contains(url, p) {
			return p
		}
	}
	return PlatformOther
}

// DetectSignalType checks executive, then expansion, then FDA/trial terms
func DetectSignalType(text string) domain.SignalType {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, executiveKeywords):
		return domain.SignalExecutive
	case containsAny(lower, expansionKeywords):
		return domain.SignalExpansion
	case containsAny(lower, fdaTerms):
		return domain.SignalFDA
	default:
		return domain.SignalOther
	}
}

// RelevanceScore rates how relevant text is to company on a 0..10 scale.
// The company name is matched literally, never as a pattern.
func RelevanceScore(text, company string) int {
	lower := strings.ToLower(text)

	score := 0
	if c := strings.ToLower(company); c != "" {
		score += strings.Count(lower, c) * 2
	}
	score += countHits(lower, healthcareKeywords)
	score += countHits(lower, hiringKeywords) * 2

	return min(score, maxRelevanceScore)
}

// lower must already be lower-cased
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func countHits(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}
