package serpapi

import (
	"context"
	"fmt"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/pkg/serpapi"
)

// searchClient describes the subset of the SerpApi client used by the provider.
type searchClient interface {
	Search(ctx context.Context, params serpapi.SearchParams) (*serpapi.Response, error)
}

// Provider implements intel.Gateway using SerpApi
type Provider struct {
	client searchClient
}

// NewProvider builds a SerpApi provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("serpapi provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "serpapi"
}

// Search runs one SerpApi query and reduces the document to raw items.
// Text fields are passed through as the provider sent them.
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	if p == nil || p.client == nil {
		return domain.SearchResult{}, fmt.Errorf("serpapi provider: client is nil")
	}

	engine, err := engineFor(req.Engine)
	if err != nil {
		return domain.SearchResult{}, err
	}

	resp, err := p.client.Search(ctx, serpapi.SearchParams{
		Engine:   engine,
		Query:    req.Query,
		TBS:      req.TimeWindow,
		Location: req.Location,
	})
	if err != nil {
		return domain.SearchResult{}, err
	}
	if resp == nil {
		return domain.SearchResult{}, nil
	}

	out := domain.SearchResult{
		Jobs:    make([]domain.RawJob, 0, len(resp.JobsResults)),
		News:    make([]domain.RawNews, 0, len(resp.NewsResults)),
		Organic: resp.OrganicResults,
	}

	for _, j := range resp.JobsResults {
		job := domain.RawJob{
			Title:        j.Title,
			CompanyName:  j.CompanyName,
			Location:     j.Location,
			Description:  j.Description,
			ShareLink:    j.ShareLink,
			ApplyOptions: make([]domain.ApplyLink, 0, len(j.ApplyOptions)),
		}
		if j.DetectedExtensions != nil {
			job.PostedAt = j.DetectedExtensions.PostedAt
		}
		for _, opt := range j.ApplyOptions {
			job.ApplyOptions = append(job.ApplyOptions, domain.ApplyLink{Title: opt.Title, Link: opt.Link})
		}
		out.Jobs = append(out.Jobs, job)
	}

	for _, n := range resp.NewsResults {
		out.News = append(out.News, domain.RawNews{
			Title:       n.Title,
			Source:      n.Source.Name,
			Date:        n.Date,
			Snippet:     n.Snippet,
			Description: n.Description,
			Link:        n.Link,
			Thumbnail:   n.Thumbnail,
		})
	}

	return out, nil
}

var _ intel.Gateway = (*Provider)(nil)

func engineFor(e domain.Engine) (serpapi.Engine, error) {
	switch e {
	case domain.EngineWeb:
		return serpapi.EngineWeb, nil
	case domain.EngineNews:
		return serpapi.EngineNews, nil
	case domain.EngineJobs:
		return serpapi.EngineJobs, nil
	default:
		return "", fmt.Errorf("serpapi provider: unsupported engine %q", e)
	}
}
