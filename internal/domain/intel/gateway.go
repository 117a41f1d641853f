package intel

import (
	"context"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

// Gateway is the external search provider (SerpApi in production)
type Gateway interface {
	// e.g. "serpapi"
	Name() string

	// Search runs one provider query. Implementations attach credentials and
	// must be safe for concurrent use.
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
}

// Provider time windows
const (
	windowTwoWeeks = "qdr:w2"
	windowOneWeek  = "qdr:w1"
)
