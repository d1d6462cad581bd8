package resume

// State is a step of the download state machine:
// Idle -> Requesting -> {Validating -> Delivering -> Idle} | {Failed -> Idle}.
type State int32

const (
	StateIdle State = iota
	StateRequesting
	StateValidating
	StateDelivering
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateValidating:
		return "validating"
	case StateDelivering:
		return "delivering"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Observer is notified on every state transition.
type Observer func(from, to State)
