package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/classify"
	"github.com/honeycarbs/staffing-intel/pkg/serpapi"
)

type stubClient struct {
	got  serpapi.SearchParams
	resp *serpapi.Response
	err  error
}

func (s *stubClient) Search(_ context.Context, params serpapi.SearchParams) (*serpapi.Response, error) {
	s.got = params
	return s.resp, s.err
}

func TestNewProviderRequiresClient(t *testing.T) {
	_, err := NewProvider(nil)
	assert.Error(t, err)
}

func TestProviderMapsEngines(t *testing.T) {
	tests := []struct {
		in   domain.Engine
		want serpapi.Engine
	}{
		{domain.EngineWeb, serpapi.EngineWeb},
		{domain.EngineNews, serpapi.EngineNews},
		{domain.EngineJobs, serpapi.EngineJobs},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			client := &stubClient{resp: &serpapi.Response{}}
			p, err := NewProvider(client)
			require.NoError(t, err)

			_, err = p.Search(context.Background(), domain.SearchRequest{
				Engine:     tt.in,
				Query:      `"HCA"`,
				TimeWindow: "qdr:w2",
				Location:   "Texas",
			})
			require.NoError(t, err)
			assert.Equal(t, serpapi.SearchParams{Engine: tt.want, Query: `"HCA"`, TBS: "qdr:w2", Location: "Texas"}, client.got)
		})
	}

	p, _ := NewProvider(&stubClient{})
	_, err := p.Search(context.Background(), domain.SearchRequest{Engine: "images", Query: "x"})
	assert.Error(t, err)
}

func TestProviderNormalizesResults(t *testing.T) {
	client := &stubClient{resp: &serpapi.Response{
		JobsResults: []serpapi.JobResult{
			{
				Title:              "MRI Tech",
				Description:        "<Urgent> immediate &amp; ASAP",
				DetectedExtensions: &serpapi.DetectedExtensions{PostedAt: "2 days ago"},
				ApplyOptions:       []serpapi.ApplyOption{{Title: "Aya", Link: "https://aya.healthcare/1"}},
			},
			{Title: "CT Tech"},
		},
		NewsResults: []serpapi.NewsResult{
			{Title: "Acme <Regional> appoints new CEO", Source: serpapi.Source{Name: "Reuters"}, Snippet: "New <b>wing</b>"},
		},
		OrganicResults: []json.RawMessage{json.RawMessage(`{"position":1}`)},
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	res, err := p.Search(context.Background(), domain.SearchRequest{Engine: domain.EngineJobs, Query: "q"})
	require.NoError(t, err)

	require.Len(t, res.Jobs, 2)
	assert.Equal(t, "<Urgent> immediate &amp; ASAP", res.Jobs[0].Description)
	assert.Equal(t, "2 days ago", res.Jobs[0].PostedAt)
	assert.Equal(t, []domain.ApplyLink{{Title: "Aya", Link: "https://aya.healthcare/1"}}, res.Jobs[0].ApplyOptions)
	assert.Empty(t, res.Jobs[1].PostedAt)

	require.Len(t, res.News, 1)
	assert.Equal(t, "Reuters", res.News[0].Source)
	assert.Equal(t, "Acme <Regional> appoints new CEO", res.News[0].Title)
	assert.Equal(t, "New <b>wing</b>", res.News[0].Snippet)
	assert.Len(t, res.Organic, 1)
}

func TestProviderPropagatesClientError(t *testing.T) {
	p, _ := NewProvider(&stubClient{err: serpapi.ErrMissingAPIKey})

	_, err := p.Search(context.Background(), domain.SearchRequest{Engine: domain.EngineNews, Query: "q"})
	assert.True(t, errors.Is(err, serpapi.ErrMissingAPIKey))
}

func TestProviderKeepsAngleBracketTextForClassification(t *testing.T) {
	company := "St. Mary <Regional>"
	client := &stubClient{resp: &serpapi.Response{
		NewsResults: []serpapi.NewsResult{{Title: "St. Mary <Regional> hospital hiring"}},
	}}
	p, err := NewProvider(client)
	require.NoError(t, err)

	res, err := p.Search(context.Background(), domain.SearchRequest{Engine: domain.EngineNews, Query: "q"})
	require.NoError(t, err)
	require.Len(t, res.News, 1)

	// company (2) + hospital (1) + hiring (2)
	assert.Equal(t, 5, classify.RelevanceScore(res.News[0].Title, company))
}
