package entities

// ScanOutcome is the overall verdict of a scan.
type ScanOutcome string

const (
	OutcomeClean     ScanOutcome = "clean"
	OutcomeUpdated   ScanOutcome = "updated"
	OutcomeOutOfDate ScanOutcome = "out-of-date"
)

// ScanResult aggregates what happened across every matched manifest.
type ScanResult struct {
	Scanned       int
	NeedingUpdate []string // manifest paths
	Written       []string // manifest paths rewritten on disk
	Updated       bool
	Outcome       ScanOutcome
}

// Failed reports whether mismatches were left uncorrected.
func (r *ScanResult) Failed() bool {
	return r.Outcome == OutcomeOutOfDate
}

// Decide fills Outcome from the collected state: mismatches without update
// mode are a failure.
func (r *ScanResult) Decide(updating bool) ScanOutcome {
	switch {
	case len(r.NeedingUpdate) == 0:
		r.Outcome = OutcomeClean
	case updating:
		r.Updated = true
		r.Outcome = OutcomeUpdated
	default:
		r.Outcome = OutcomeOutOfDate
	}
	return r.Outcome
}
