package intel

import (
	"context"
	"strings"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/classify"
)

const notAvailable = "N/A"

// collectHiring searches recent staffing-style postings for the company.
// Gateway failures yield an empty summary.
func (s *service) collectHiring(ctx context.Context, q domain.QueryContext) domain.HiringSummary {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine:     domain.EngineJobs,
		Query:      hiringQuery(q),
		TimeWindow: windowTwoWeeks,
	})
	if err != nil {
		s.logger.Warn("hiring collector failed", "collector", "hiring", "company", q.Company, "err", err)
		return emptyHiring()
	}

	postings := make([]domain.Posting, 0, len(res.Jobs))
	for _, job := range res.Jobs {
		postings = append(postings, normalizePosting(job, q.Company))
	}

	return summarizeHiring(postings)
}

// collectSignals searches leadership, expansion, and research news and
// partitions it by signal type. Gateway failures yield empty buckets.
func (s *service) collectSignals(ctx context.Context, q domain.QueryContext) domain.SignalsSummary {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine:     domain.EngineNews,
		Query:      signalsQuery(q),
		TimeWindow: windowTwoWeeks,
	})
	if err != nil {
		s.logger.Warn("signals collector failed", "collector", "signals", "company", q.Company, "err", err)
		return emptySignals()
	}

	out := emptySignals()
	for _, item := range res.News {
		sig := normalizeSignal(item, q.Company)
		sig.SignalType = classify.DetectSignalType(classifierText(item))

		switch sig.SignalType {
		case domain.SignalExecutive:
			out.ExecutiveChanges = append(out.ExecutiveChanges, sig)
		case domain.SignalExpansion:
			out.ExpansionActivity = append(out.ExpansionActivity, sig)
		case domain.SignalFDA:
			out.FDAActivity = append(out.FDAActivity, sig)
		default:
			out.OtherSignals = append(out.OtherSignals, sig)
		}
	}

	return out
}

// collectNews searches the last week of business news in provider order.
// Gateway failures yield an empty list.
func (s *service) collectNews(ctx context.Context, q domain.QueryContext) []domain.Signal {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine:     domain.EngineNews,
		Query:      newsQuery(q),
		TimeWindow: windowOneWeek,
	})
	if err != nil {
		s.logger.Warn("news collector failed", "collector", "news", "company", q.Company, "err", err)
		return []domain.Signal{}
	}

	news := make([]domain.Signal, 0, len(res.News))
	for _, item := range res.News {
		news = append(news, normalizeSignal(item, q.Company))
	}
	return news
}

func hiringQuery(q domain.QueryContext) string {
	query := quote(q.Company) +
		" AND (" + quoteAny(classify.ContractKeywords()) + ")" +
		" AND (" + quoteAny(classify.ModalityNames()) + ")"
	return withLocation(query, q.Location)
}

func signalsQuery(q domain.QueryContext) string {
	company := quote(q.Company)
	groups := []string{
		company + " AND (" + quoteAny(classify.ExecutiveKeywords()) + ")",
		company + " AND (" + quoteAny(classify.ExpansionKeywords()) + ")",
		company + " AND (" + quoteAny(classify.ResearchKeywords()) + ")",
	}
	return withLocation(strings.Join(groups, " OR "), q.Location)
}

func newsQuery(q domain.QueryContext) string {
	query := quote(q.Company) + " AND (" + quoteAny(classify.NewsKeywords()) + ")"
	return withLocation(query, q.Location)
}

func withLocation(query, location string) string {
	if location == "" {
		return query
	}
	return query + " AND " + quote(location)
}

func quote(term string) string {
	return `"` + term + `"`
}

func quoteAny(terms []string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, quote(t))
	}
	return strings.Join(quoted, " OR ")
}

func normalizePosting(job domain.RawJob, company string) domain.Posting {
	text := job.Title + " " + job.Description

	links := make([]domain.ApplyLink, 0, len(job.ApplyOptions))
	links = append(links, job.ApplyOptions...)

	return domain.Posting{
		Title:        orDefault(job.Title, notAvailable),
		Company:      orDefault(job.CompanyName, company),
		Location:     orDefault(job.Location, notAvailable),
		PostedAt:     orDefault(job.PostedAt, notAvailable),
		Description:  strings.TrimSpace(job.Description),
		ShareLink:    job.ShareLink,
		Modality:     classify.DetectModality(text),
		Urgency:      classify.CalculateUrgency(text),
		ContractType: classify.DetectContractType(text),
		Platform:     classify.DetectPlatform(job.ShareLink),
		ApplyLinks:   links,
	}
}

func summarizeHiring(postings []domain.Posting) domain.HiringSummary {
	summary := emptyHiring()
	summary.TotalPostings = len(postings)
	summary.Postings = postings

	seenModality := make(map[string]bool)
	seenContract := make(map[string]bool)
	for _, p := range postings {
		if p.Urgency == domain.UrgencyHigh {
			summary.UrgentCount++
		}
		if p.Modality != nil && !seenModality[string(*p.Modality)] {
			seenModality[string(*p.Modality)] = true
			summary.Modalities = append(summary.Modalities, string(*p.Modality))
		}
		if p.ContractType != nil && !seenContract[*p.ContractType] {
			seenContract[*p.ContractType] = true
			summary.ContractTypes = append(summary.ContractTypes, *p.ContractType)
		}
	}

	return summary
}

func normalizeSignal(item domain.RawNews, company string) domain.Signal {
	snippet := item.Snippet
	if snippet == "" {
		snippet = item.Description
	}

	return domain.Signal{
		Headline:       strings.TrimSpace(item.Title),
		Source:         item.Source,
		Date:           orDefault(item.Date, notAvailable),
		Snippet:        snippet,
		Link:           item.Link,
		RelevanceScore: classify.RelevanceScore(classifierText(item), company),
	}
}

// classifierText is the headline plus the provider snippet only; the
// description fallback is for display.
func classifierText(item domain.RawNews) string {
	return item.Title + " " + item.Snippet
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func emptyHiring() domain.HiringSummary {
	return domain.HiringSummary{
		Modalities:    []string{},
		ContractTypes: []string{},
		Postings:      []domain.Posting{},
	}
}

func emptySignals() domain.SignalsSummary {
	return domain.SignalsSummary{
		ExecutiveChanges:  []domain.Signal{},
		ExpansionActivity: []domain.Signal{},
		FDAActivity:       []domain.Signal{},
		OtherSignals:      []domain.Signal{},
	}
}
