package country

// LoadStatus is the lifecycle of one load: Pending, then Loaded or Failed.
type LoadStatus int

const (
	// StatusPending means the load has not resolved yet.
	StatusPending LoadStatus = iota
	// StatusLoaded means records are available.
	StatusLoaded
	// StatusFailed means the load failed; it is terminal.
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolve returns the status that follows a load returning err.
func Resolve(err error) LoadStatus {
	if err != nil {
		return StatusFailed
	}
	return StatusLoaded
}
