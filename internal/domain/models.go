package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies one generated report
type ReportID = uuid.UUID

// Modality is a healthcare imaging/diagnostic specialty
type Modality string

const (
	ModalityRadiology      Modality = "radiology"
	ModalityMRI            Modality = "mri"
	ModalityCT             Modality = "ct"
	ModalityEcho           Modality = "echo"
	ModalityCathLab        Modality = "cath_lab"
	ModalityInterventional Modality = "interventional"
)

// Urgency is the time-sensitivity of a posting
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// SignalType classifies a news item as a leading staffing indicator
type SignalType string

const (
	SignalExecutive SignalType = "executive"
	SignalExpansion SignalType = "expansion"
	SignalFDA       SignalType = "fda"
	SignalOther     SignalType = "other"
)

// Priority is the outreach tier derived from the overall score
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Timeline is the suggested outreach window
type Timeline string

const (
	TimelineWithinWeek  Timeline = "within_week"
	TimelineWithinMonth Timeline = "within_month"
)

// Engine selects which provider vertical a search runs against
type Engine string

const (
	EngineWeb  Engine = "web"
	EngineNews Engine = "news"
	EngineJobs Engine = "jobs"
)

// QueryContext is the input to one report computation
type QueryContext struct {
	Company  string `json:"company" validate:"required"`
	Location string `json:"location,omitempty"`
}

// SearchRequest is one outbound gateway call
type SearchRequest struct {
	Engine     Engine
	Query      string
	TimeWindow string // provider time filter, empty for none
	Location   string
}

// SearchResult is the provider document reduced to the parts the service
// reads. Raw items keep absent fields as zero values.
type SearchResult struct {
	Jobs    []RawJob
	News    []RawNews
	Organic []json.RawMessage // passed through verbatim
}

// RawJob is an untrusted job posting from the provider
type RawJob struct {
	Title        string
	CompanyName  string
	Location     string
	Description  string
	ShareLink    string
	PostedAt     string
	ApplyOptions []ApplyLink
}

// RawNews is an untrusted news item from the provider
type RawNews struct {
	Title       string
	Source      string
	Date        string
	Snippet     string
	Description string
	Link        string
	Thumbnail   string
}

// ApplyLink is an application channel attached to a posting
type ApplyLink struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Posting is a normalized, classified job posting
type Posting struct {
	Title        string      `json:"title"`
	Company      string      `json:"company"`
	Location     string      `json:"location"`
	PostedAt     string      `json:"posted_at"`
	Description  string      `json:"description"`
	ShareLink    string      `json:"share_link"`
	Modality     *Modality   `json:"modality"`
	Urgency      Urgency     `json:"urgency"`
	ContractType *string     `json:"contract_type"`
	Platform     string      `json:"platform"`
	ApplyLinks   []ApplyLink `json:"apply_links"`
}

// Signal is a normalized news item. SignalType is empty for plain news.
type Signal struct {
	Headline       string     `json:"headline"`
	Source         string     `json:"source"`
	Date           string     `json:"date"`
	Snippet        string     `json:"snippet"`
	Link           string     `json:"link"`
	SignalType     SignalType `json:"signal_type,omitempty"`
	RelevanceScore int        `json:"relevance_score"`
}

// HiringSummary is the output of the hiring collector
type HiringSummary struct {
	TotalPostings int
	UrgentCount   int
	Modalities    []string
	ContractTypes []string
	Postings      []Posting
}

// SignalsSummary partitions signals by type
type SignalsSummary struct {
	ExecutiveChanges  []Signal `json:"executive_changes"`
	ExpansionActivity []Signal `json:"expansion_activity"`
	FDAActivity       []Signal `json:"fda_activity"`
	OtherSignals      []Signal `json:"other_signals"`
}

// HiringActivity is the report view of a HiringSummary
type HiringActivity struct {
	RecentPostingsCount int       `json:"recent_postings_count"`
	UrgentNeeds         int       `json:"urgent_needs"`
	ModalitiesHiring    []string  `json:"modalities_hiring"`
	ContractTypes       []string  `json:"contract_types"`
	Postings            []Posting `json:"postings"`
}

type ConfidenceIndicators struct {
	MultipleSignals      bool `json:"multiple_signals"`
	VerifiedSources      bool `json:"verified_sources"`
	RecentActivity       bool `json:"recent_activity"`
	ContactInfoAvailable bool `json:"contact_info_available"`
}

type Recommendation struct {
	Priority      Priority `json:"priority"`
	Reasoning     string   `json:"reasoning"`
	NextActions   []string `json:"next_actions"`
	TalkingPoints []string `json:"talking_points"`
}

// Report is the intelligence report returned for one company
type Report struct {
	ID                   ReportID             `json:"report_id"`
	Company              string               `json:"company"`
	Location             *string              `json:"location"`
	SearchTimestamp      time.Time            `json:"search_timestamp"`
	OverallScore         int                  `json:"overall_score"`
	PriorityLevel        Priority             `json:"priority_level"`
	ActionableTimeline   Timeline             `json:"actionable_timeline"`
	HiringActivity       HiringActivity       `json:"hiring_activity"`
	SupplementarySignals SignalsSummary       `json:"supplementary_signals"`
	RecentNews           []Signal             `json:"recent_news"`
	ConfidenceIndicators ConfidenceIndicators `json:"confidence_indicators"`
	Recommendations      Recommendation       `json:"recommendations"`
}

// JobListing is the legacy /jobs response item
type JobListing struct {
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	PostedAt    string      `json:"posted_at"`
	Description string      `json:"description"`
	ShareLink   string      `json:"share_link"`
	ApplyLinks  []ApplyLink `json:"apply_links"`
}

// NewsListing is the legacy /news response item
type NewsListing struct {
	Title         string `json:"title"`
	Source        string `json:"source"`
	PublishedDate string `json:"published_date"`
	Snippet       string `json:"snippet"`
	Link          string `json:"link"`
	Thumbnail     string `json:"thumbnail"`
}
