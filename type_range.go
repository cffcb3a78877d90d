package fundfx

import "fmt"

// Range represents an inclusive range of dates, used as one fetch
// window against the fund-price source.
type Range struct{ From, To Date }

// Contains return true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days covered by the range, boundaries included.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }

// IsSingleDay reports whether the window covers exactly one day.
func (r Range) IsSingleDay() bool { return r.From == r.To }

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
