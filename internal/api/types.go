package api

import "github.com/honeycarbs/staffing-intel/internal/domain"

const (
	serviceName = "Healthcare Staffing Intelligence API"
	usageHint   = "GET /intelligence?company=HCA&location=Texas (location optional)"
)

type reportResponse struct {
	Success bool          `json:"success"`
	Data    domain.Report `json:"data"`
}

type resultsResponse struct {
	Success bool `json:"success"`
	Results any  `json:"results"`
}

type usageErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Usage   string `json:"usage"`
}

type intelligenceErrorResponse struct {
	Success  bool    `json:"success"`
	Error    string  `json:"error"`
	Details  string  `json:"details"`
	Company  string  `json:"company"`
	Location *string `json:"location"`
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Success   bool              `json:"success"`
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}
