package model

// Generation identifies one search attempt. It only ever grows.
type Generation uint64

// Status is the lifecycle state of a search generation.
type Status int

const (
	// Idle means no search is active (empty pattern).
	Idle Status = iota
	// Running means files are still being enumerated or scanned.
	Running
	// Completed means every candidate file has been scanned.
	Completed
	// Cancelled means a newer request superseded the search.
	Cancelled
	// Failed means the search could not run at all, see Outcome.Reason.
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further updates will follow for the generation.
func (s Status) Terminal() bool {
	return s == Completed || s == Cancelled || s == Failed
}

// SearchRequest is one (pattern, roots) pair tagged with its generation.
type SearchRequest struct {
	Pattern    *Pattern
	Roots      []Path
	Generation Generation
}

// Outcome is the aggregate state of one generation as seen by the display.
type Outcome struct {
	Generation   Generation
	Pattern      string
	Status       Status
	Reason       string
	Matches      []Match
	FilesScanned int
}
