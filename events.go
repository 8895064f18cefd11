package rxpermissions

// Observer receives coordinator lifecycle events. Implementations must be
// safe for concurrent use; events fire from whichever goroutine calls
// Request or OnGrantResult.
type Observer interface {
	On(eventData EventData)
}

// Event represents a coordinator event type.
type Event int

const (
	// EventRequested is emitted when a fresh prompt for a permission is
	// sent to the authority.
	EventRequested Event = iota
	// EventCoalesced is emitted when a request attaches to a permission
	// that is already pending instead of prompting again.
	EventCoalesced
	// EventShortCircuit is emitted when a requested permission was
	// already granted and no prompt was needed.
	EventShortCircuit
	// EventResolved is emitted when the authority's answer for a
	// permission has been delivered to its waiters.
	EventResolved
)

// EventData carries the details of a coordinator event.
type EventData struct {
	Event      Event
	Permission string
}
