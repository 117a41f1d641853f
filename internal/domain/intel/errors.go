package intel

import (
	"errors"
	"fmt"
)

// ErrCompanyRequired is returned before any provider call when the company is blank
var ErrCompanyRequired = errors.New("company name is required")

// AggregationError wraps a failure while combining collector output
type AggregationError struct {
	Company  string
	Location string
	Err      error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("Intelligence gathering failed: %v", e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
