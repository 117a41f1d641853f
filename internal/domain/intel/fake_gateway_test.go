package intel

import (
	"context"
	"sync"

	"github.com/honeycarbs/staffing-intel/internal/domain"
)

// fakeGateway routes requests to per-collector responses. Signals and news
// share an engine and differ by time window.
type fakeGateway struct {
	mu    sync.Mutex
	calls []domain.SearchRequest

	jobs    func() (domain.SearchResult, error)
	signals func() (domain.SearchResult, error)
	news    func() (domain.SearchResult, error)
	other   func(req domain.SearchRequest) (domain.SearchResult, error)
}

func (f *fakeGateway) Name() string { return "fake" }

func (f *fakeGateway) Search(_ context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	var fn func() (domain.SearchResult, error)
	switch {
	case req.Engine == domain.EngineJobs && req.TimeWindow == windowTwoWeeks:
		fn = f.jobs
	case req.Engine == domain.EngineNews && req.TimeWindow == windowTwoWeeks:
		fn = f.signals
	case req.Engine == domain.EngineNews && req.TimeWindow == windowOneWeek:
		fn = f.news
	default:
		if f.other != nil {
			return f.other(req)
		}
	}
	if fn == nil {
		return domain.SearchResult{}, nil
	}
	return fn()
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGateway) lastCall() domain.SearchRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

var _ Gateway = (*fakeGateway)(nil)
