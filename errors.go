package fundfx

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a degenerate analysis range: the start date is
// not strictly before the as-of date, so no fetch window can be formed.
var ErrInvalidRange = errors.New("start date must be before as-of date")

// ErrDataIntegrity reports a violated join precondition: the FX source
// returned more than one row for a single date.
var ErrDataIntegrity = errors.New("duplicate FX rate for date")

// Pipeline stage names, used to report where a run failed.
const (
	StageWindows = "windows"
	StagePrices  = "prices"
	StageRates   = "rates"
	StageJoin    = "join"
)

// FetchError wraps a collaborator failure with the fund code and the
// pipeline stage it interrupted. The core performs no retries; the
// error propagates unchanged to the caller.
type FetchError struct {
	Code  string // fund code of the aborted run
	Stage string // one of the Stage constants
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fund %s: stage %s: %v", e.Code, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
