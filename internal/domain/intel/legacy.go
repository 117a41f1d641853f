package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

const legacyNewsLookback = 7 // days

// LegacyQuery is the input of the pass-through search routes
type LegacyQuery struct {
	Company  string
	City     string
	Industry string
	Signals  []string // news only, underscores read as spaces
}

// SearchJobs forwards a jobs search and reshapes the postings. Unlike
// collectors, gateway errors are returned to the caller.
func (s *service) SearchJobs(ctx context.Context, q LegacyQuery) ([]domain.JobListing, error) {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine:   domain.EngineJobs,
		Query:    joinNonEmpty(" ", q.Company, q.Industry),
		Location: q.City,
	})
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	out := make([]domain.JobListing, 0, len(res.Jobs))
	for _, job := range res.Jobs {
		links := make([]domain.ApplyLink, 0, len(job.ApplyOptions))
		links = append(links, job.ApplyOptions...)

		out = append(out, domain.JobListing{
			Title:       orDefault(job.Title, notAvailable),
			Company:     orDefault(job.CompanyName, notAvailable),
			Location:    orDefault(job.Location, notAvailable),
			PostedAt:    orDefault(job.PostedAt, notAvailable),
			Description: strings.TrimSpace(job.Description),
			ShareLink:   job.ShareLink,
			ApplyLinks:  links,
		})
	}
	return out, nil
}

// SearchNews forwards a news search restricted to the last seven days
func (s *service) SearchNews(ctx context.Context, q LegacyQuery) ([]domain.NewsListing, error) {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine:     domain.EngineNews,
		Query:      legacyNewsQuery(q),
		TimeWindow: s.lastWeekRange(),
	})
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}

	out := make([]domain.NewsListing, 0, len(res.News))
	for _, item := range res.News {
		snippet := item.Snippet
		if snippet == "" {
			snippet = item.Description
		}

		out = append(out, domain.NewsListing{
			Title:         strings.TrimSpace(item.Title),
			Source:        item.Source,
			PublishedDate: orDefault(item.Date, notAvailable),
			Snippet:       snippet,
			Link:          item.Link,
			Thumbnail:     item.Thumbnail,
		})
	}
	return out, nil
}

// SearchWeb forwards a web search; organic results are returned untouched
func (s *service) SearchWeb(ctx context.Context, q LegacyQuery) ([]json.RawMessage, error) {
	res, err := s.gateway.Search(ctx, domain.SearchRequest{
		Engine: domain.EngineWeb,
		Query:  joinNonEmpty(" ", q.Company, q.City, q.Industry),
	})
	if err != nil {
		return nil, fmt.Errorf("search web: %w", err)
	}

	if res.Organic == nil {
		return []json.RawMessage{}, nil
	}
	return res.Organic, nil
}

func legacyNewsQuery(q LegacyQuery) string {
	var parts []string
	for _, p := range []string{q.Company, q.City, q.Industry} {
		if p != "" {
			parts = append(parts, quote(p))
		}
	}
	query := strings.Join(parts, " ")

	if len(q.Signals) > 0 {
		terms := make([]string, 0, len(q.Signals))
		for _, sig := range q.Signals {
			terms = append(terms, strings.ReplaceAll(sig, "_", " "))
		}
		query += " (" + quoteAny(terms) + ")"
	}

	return query
}

// lastWeekRange renders a custom date range filter, e.g.
// "cdr:1,cd_min:2024-05-01,cd_max:2024-05-08"
func (s *service) lastWeekRange() string {
	today := s.clock().UTC()
	from := today.AddDate(0, 0, -legacyNewsLookback)
	return fmt.Sprintf("cdr:1,cd_min:%s,cd_max:%s", from.Format("2006-01-02"), today.Format("2006-01-02"))
}

func joinNonEmpty(sep string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}
