package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAttachesCredentialAndParams(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"engine":   q.Get("engine"),
			"q":        q.Get("q"),
			"api_key":  q.Get("api_key"),
			"tbs":      q.Get("tbs"),
			"location": q.Get("location"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs_results":[{"title":"MRI Tech","company_name":"Acme","detected_extensions":{"posted_at":"2 days ago"},"apply_options":[{"title":"Apply","link":"https://x"}]}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "secret", BaseURL: srv.URL})
	resp, err := c.Search(context.Background(), SearchParams{
		Engine:   EngineJobs,
		Query:    `"Acme" AND ("travel")`,
		TBS:      "qdr:w2",
		Location: "Texas",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"engine":   "google_jobs",
		"q":        `"Acme" AND ("travel")`,
		"api_key":  "secret",
		"tbs":      "qdr:w2",
		"location": "Texas",
	}, got)

	require.Len(t, resp.JobsResults, 1)
	job := resp.JobsResults[0]
	assert.Equal(t, "MRI Tech", job.Title)
	require.NotNil(t, job.DetectedExtensions)
	assert.Equal(t, "2 days ago", job.DetectedExtensions.PostedAt)
	assert.Equal(t, []ApplyOption{{Title: "Apply", Link: "https://x"}}, job.ApplyOptions)
}

func TestSearchOmitsEmptyOptionalParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("tbs"))
		assert.False(t, q.Has("location"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	resp, err := c.Search(context.Background(), SearchParams{Engine: EngineWeb, Query: "acme"})
	require.NoError(t, err)
	assert.Empty(t, resp.OrganicResults)
}

func TestSearchMissingAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.Search(context.Background(), SearchParams{Engine: EngineNews, Query: "acme"})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Zero(t, calls)
}

func TestSearchRequiresEngineAndQuery(t *testing.T) {
	c := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})

	_, err := c.Search(context.Background(), SearchParams{Query: "acme"})
	assert.ErrorContains(t, err, "engine is required")

	_, err = c.Search(context.Background(), SearchParams{Engine: EngineWeb, Query: "  "})
	assert.ErrorContains(t, err, "query is required")
}

func TestSearchAPIErrorUsesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key."}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL})
	_, err := c.Search(context.Background(), SearchParams{Engine: EngineNews, Query: "acme"})
	require.Error(t, err)
	assert.Equal(t, "serpapi: API error (401): Invalid API key.", err.Error())
}

func TestSearchNoResultsIsEmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Google hasn't returned any results for this query."}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	resp, err := c.Search(context.Background(), SearchParams{Engine: EngineNews, Query: "acme"})
	require.NoError(t, err)
	assert.Empty(t, resp.NewsResults)
	assert.NotEmpty(t, resp.Error)
}

func TestSearchDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Search(context.Background(), SearchParams{Engine: EngineNews, Query: "acme"})
	assert.ErrorContains(t, err, "decode response")
}

func TestSourceUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"object", `{"source":{"name":"Reuters","icon":"x"}}`, "Reuters"},
		{"string", `{"source":"AP"}`, "AP"},
		{"null", `{"source":null}`, ""},
		{"absent", `{}`, ""},
		{"number", `{"source":42}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item NewsResult
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &item))
			assert.Equal(t, tt.want, item.Source.Name)
		})
	}
}

func TestSearchDecodesItemsLeniently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"news_results": [
				{"title": 2024, "source": {"name": "Reuters"}, "snippet": null, "link": ["x"]},
				{"title": "HCA names new CEO", "source": "AP"}
			],
			"jobs_results": [
				{"title": "MRI Tech", "detected_extensions": "2 days ago", "apply_options": [{"title": "Aya", "link": "https://aya"}, "junk"]},
				"junk",
				{"title": "CT Tech", "apply_options": {"title": "x"}}
			],
			"organic_results": {"position": 1}
		}`))
	}))
	defer srv.Close()

	resp, err := NewClient(Config{APIKey: "k", BaseURL: srv.URL}).Search(context.Background(), SearchParams{Engine: EngineNews, Query: "HCA"})
	require.NoError(t, err)

	require.Len(t, resp.NewsResults, 2)
	assert.Equal(t, "2024", resp.NewsResults[0].Title)
	assert.Equal(t, "Reuters", resp.NewsResults[0].Source.Name)
	assert.Empty(t, resp.NewsResults[0].Snippet)
	assert.Empty(t, resp.NewsResults[0].Link)
	assert.Equal(t, "HCA names new CEO", resp.NewsResults[1].Title)
	assert.Equal(t, "AP", resp.NewsResults[1].Source.Name)

	require.Len(t, resp.JobsResults, 3)
	assert.Equal(t, "MRI Tech", resp.JobsResults[0].Title)
	assert.Nil(t, resp.JobsResults[0].DetectedExtensions)
	assert.Equal(t, []ApplyOption{{Title: "Aya", Link: "https://aya"}}, resp.JobsResults[0].ApplyOptions)
	assert.Equal(t, JobResult{}, resp.JobsResults[1])
	assert.Equal(t, "CT Tech", resp.JobsResults[2].Title)
	assert.Empty(t, resp.JobsResults[2].ApplyOptions)

	assert.Nil(t, resp.OrganicResults)
}
