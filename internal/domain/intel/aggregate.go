package intel

import (
	"fmt"
	"math"
	"strings"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

const (
	maxScore            = 10
	maxPostingsInReport = 10
	maxNewsInReport     = 5
	highRelevanceFloor  = 6
)

// Aggregate combines collector output into a scored report. It performs no
// I/O; the caller stamps ID and SearchTimestamp.
func Aggregate(hiring domain.HiringSummary, signals domain.SignalsSummary, news []domain.Signal, company, location string) (domain.Report, error) {
	if strings.TrimSpace(company) == "" {
		return domain.Report{}, fmt.Errorf("aggregate: %w", ErrCompanyRequired)
	}

	hiring = normalizeHiring(hiring)
	signals = normalizeSignals(signals)
	if news == nil {
		news = []domain.Signal{}
	}

	score := Score(hiring, signals, news)
	recent := hasRecentActivity(hiring, signals)

	var loc *string
	if location != "" {
		loc = &location
	}

	timeline := domain.TimelineWithinMonth
	if recent {
		timeline = domain.TimelineWithinWeek
	}

	return domain.Report{
		Company:            company,
		Location:           loc,
		OverallScore:       score,
		PriorityLevel:      PriorityFor(score),
		ActionableTimeline: timeline,
		HiringActivity: domain.HiringActivity{
			RecentPostingsCount: hiring.TotalPostings,
			UrgentNeeds:         hiring.UrgentCount,
			ModalitiesHiring:    hiring.Modalities,
			ContractTypes:       hiring.ContractTypes,
			Postings:            hiring.Postings[:min(len(hiring.Postings), maxPostingsInReport)],
		},
		SupplementarySignals: signals,
		RecentNews:           news[:min(len(news), maxNewsInReport)],
		ConfidenceIndicators: domain.ConfidenceIndicators{
			MultipleSignals:      hiring.TotalPostings+len(signals.ExecutiveChanges)+len(signals.ExpansionActivity) > 2,
			VerifiedSources:      true,
			RecentActivity:       recent,
			ContactInfoAvailable: hasApplyLinks(hiring.Postings),
		},
		Recommendations: Recommend(hiring, signals, score),
	}, nil
}

// Score is the weighted sum of hiring, signal, and news evidence, rounded
// half-up and clamped to [0, 10].
func Score(hiring domain.HiringSummary, signals domain.SignalsSummary, news []domain.Signal) int {
	score := 0.0

	score += math.Min(float64(hiring.TotalPostings)*0.5, 3)
	score += float64(hiring.UrgentCount) * 1
	score += float64(len(hiring.Modalities)) * 0.5

	score += float64(len(signals.ExecutiveChanges)) * 1.5
	score += float64(len(signals.ExpansionActivity)) * 1
	score += float64(len(signals.FDAActivity)) * 0.5

	highRelevance := 0
	for _, n := range news {
		if n.RelevanceScore >= highRelevanceFloor {
			highRelevance++
		}
	}
	score += float64(highRelevance) * 0.5

	rounded := int(math.Floor(score + 0.5))
	return max(0, min(rounded, maxScore))
}

// PriorityFor maps a score to its outreach tier
func PriorityFor(score int) domain.Priority {
	switch {
	case score >= 7:
		return domain.PriorityHigh
	case score >= 4:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// Recommend builds reasoning, next actions, and talking points
func Recommend(hiring domain.HiringSummary, signals domain.SignalsSummary, score int) domain.Recommendation {
	var reasons []string
	if hiring.UrgentCount > 0 {
		reasons = append(reasons, fmt.Sprintf("%d urgent hiring needs detected", hiring.UrgentCount))
	}
	if len(signals.ExecutiveChanges) > 0 {
		reasons = append(reasons, "Recent executive changes indicate organizational shifts")
	}
	if len(signals.ExpansionActivity) > 0 {
		reasons = append(reasons, "Expansion activity suggests growing staffing needs")
	}

	var actions []string
	switch PriorityFor(score) {
	case domain.PriorityHigh:
		actions = []string{"Contact directly within 24-48 hours", "Reference specific urgent openings in outreach"}
	case domain.PriorityMedium:
		actions = []string{"Add to priority follow-up list", "Monitor for additional signals"}
	default:
		actions = []string{"Add to general monitoring list"}
	}

	points := []string{}
	if len(hiring.Modalities) > 0 {
		points = append(points, fmt.Sprintf("Immediate availability for %s positions", strings.Join(hiring.Modalities, ", ")))
	}
	if len(signals.ExpansionActivity) > 0 {
		points = append(points, "Experience supporting rapid deployment for expanding facilities")
	}

	return domain.Recommendation{
		Priority:      PriorityFor(score),
		Reasoning:     strings.Join(reasons, " + "),
		NextActions:   actions,
		TalkingPoints: points,
	}
}

func hasRecentActivity(hiring domain.HiringSummary, signals domain.SignalsSummary) bool {
	return hiring.UrgentCount > 0 || len(signals.ExecutiveChanges)+len(signals.ExpansionActivity) > 0
}

func hasApplyLinks(postings []domain.Posting) bool {
	for _, p := range postings {
		if len(p.ApplyLinks) > 0 {
			return true
		}
	}
	return false
}

// nil slices serialize as null; reports always carry arrays
func normalizeHiring(h domain.HiringSummary) domain.HiringSummary {
	if h.Modalities == nil {
		h.Modalities = []string{}
	}
	if h.ContractTypes == nil {
		h.ContractTypes = []string{}
	}
	if h.Postings == nil {
		h.Postings = []domain.Posting{}
	}
	return h
}

func normalizeSignals(s domain.SignalsSummary) domain.SignalsSummary {
	if s.ExecutiveChanges == nil {
		s.ExecutiveChanges = []domain.Signal{}
	}
	if s.ExpansionActivity == nil {
		s.ExpansionActivity = []domain.Signal{}
	}
	if s.FDAActivity == nil {
		s.FDAActivity = []domain.Signal{}
	}
	if s.OtherSignals == nil {
		s.OtherSignals = []domain.Signal{}
	}
	return s
}
