package serpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// Engine selects the SerpApi search backend
type Engine string

const (
	EngineWeb  Engine = "google"
	EngineNews Engine = "google_news"
	EngineJobs Engine = "google_jobs"
)

// Config defines SerpApi client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client queries the SerpApi search endpoint
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchParams describe one provider request
type SearchParams struct {
	Engine   Engine
	Query    string
	TBS      string // time filter, e.g. qdr:w2 or cdr:1,cd_min:...,cd_max:...
	Location string
}

// Response is the subset of the SerpApi document the service reads.
// Every field is optional in practice: a field with an unexpected JSON type
// is treated as absent instead of failing the whole document.
type Response struct {
	Error          string            `json:"error,omitempty"`
	JobsResults    []JobResult       `json:"jobs_results,omitempty"`
	NewsResults    []NewsResult      `json:"news_results,omitempty"`
	OrganicResults []json.RawMessage `json:"organic_results,omitempty"`
}

func (r *Response) UnmarshalJSON(b []byte) error {
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	*r = Response{Error: f.text("error")}
	for _, raw := range f.list("jobs_results") {
		var j JobResult
		_ = j.UnmarshalJSON(raw)
		r.JobsResults = append(r.JobsResults, j)
	}
	for _, raw := range f.list("news_results") {
		var n NewsResult
		_ = n.UnmarshalJSON(raw)
		r.NewsResults = append(r.NewsResults, n)
	}
	r.OrganicResults = f.list("organic_results")
	return nil
}

// JobResult is a google_jobs result entry
type JobResult struct {
	Title              string              `json:"title,omitempty"`
	CompanyName        string              `json:"company_name,omitempty"`
	Location           string              `json:"location,omitempty"`
	Description        string              `json:"description,omitempty"`
	ShareLink          string              `json:"share_link,omitempty"`
	DetectedExtensions *DetectedExtensions `json:"detected_extensions,omitempty"`
	ApplyOptions       []ApplyOption       `json:"apply_options,omitempty"`
}

// UnmarshalJSON never fails; an entry that is not an object decodes as empty.
func (j *JobResult) UnmarshalJSON(b []byte) error {
	f := decodeFields(b)
	*j = JobResult{
		Title:       f.text("title"),
		CompanyName: f.text("company_name"),
		Location:    f.text("location"),
		Description: f.text("description"),
		ShareLink:   f.text("share_link"),
	}
	if ext := f.object("detected_extensions"); ext != nil {
		j.DetectedExtensions = &DetectedExtensions{PostedAt: ext.text("posted_at")}
	}
	for _, raw := range f.list("apply_options") {
		opt := decodeFields(raw)
		if opt == nil {
			continue
		}
		j.ApplyOptions = append(j.ApplyOptions, ApplyOption{Title: opt.text("title"), Link: opt.text("link")})
	}
	return nil
}

type DetectedExtensions struct {
	PostedAt string `json:"posted_at,omitempty"`
}

type ApplyOption struct {
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
}

// NewsResult is a google_news result entry
type NewsResult struct {
	Title       string `json:"title,omitempty"`
	Source      Source `json:"source"`
	Date        string `json:"date,omitempty"`
	Snippet     string `json:"snippet,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// UnmarshalJSON never fails; an entry that is not an object decodes as empty.
func (n *NewsResult) UnmarshalJSON(b []byte) error {
	f := decodeFields(b)
	*n = NewsResult{
		Title:       f.text("title"),
		Date:        f.text("date"),
		Snippet:     f.text("snippet"),
		Description: f.text("description"),
		Link:        f.text("link"),
		Thumbnail:   f.text("thumbnail"),
	}
	if raw, ok := f["source"]; ok {
		_ = n.Source.UnmarshalJSON(raw)
	}
	return nil
}

// Source is sent either as a plain string or as an object with a name
type Source struct {
	Name string
}

func (s *Source) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		s.Name = ""
		return nil
	}

	if b[0] == '"' {
		return json.Unmarshal(b, &s.Name)
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		// unknown shapes are treated as absent
		s.Name = ""
		return nil
	}
	s.Name = obj.Name
	return nil
}

func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

// fields is one JSON object with its members left undecoded
type fields map[string]json.RawMessage

// decodeFields returns nil when b is not a JSON object
func decodeFields(b []byte) fields {
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	return f
}

// text reads a string member. Numbers and booleans keep their literal form;
// other types read as "".
func (f fields) text(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	raw = bytes.TrimSpace(raw)
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		switch v.(type) {
		case float64, bool:
			return string(raw)
		}
	}
	return ""
}

func (f fields) list(key string) []json.RawMessage {
	var out []json.RawMessage
	if err := json.Unmarshal(f[key], &out); err != nil {
		return nil
	}
	return out
}

func (f fields) object(key string) fields {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	return decodeFields(raw)
}
