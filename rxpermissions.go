package rxpermissions

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPermissions is returned by Request and IsGranted when called
	// with an empty permission list.
	ErrNoPermissions = errors.New("rxpermissions: at least one permission is required")

	// ErrResultMismatch is returned by OnGrantResult when the permission
	// and grant slices differ in length. The host's callback contract is
	// parallel arrays of equal length.
	ErrResultMismatch = errors.New("rxpermissions: permissions and grants differ in length")

	// ErrNoPendingRequest is returned by OnGrantResult when the platform
	// reported a result for a permission nobody is waiting on. This means
	// the host invoked the callback it was never asked for, or invoked it
	// twice for the same permission; a lost result would hide behind it,
	// so it is never swallowed.
	ErrNoPendingRequest = errors.New("rxpermissions: no pending request for permission")
)

// Permissions coordinates permission requests against one [Authority].
// Concurrent requests for the same permission share a single prompt and a
// single eventual answer. The zero value is not usable; create instances
// with [New].
//
// Methods never block: Request returns a pending one-shot channel, and
// OnGrantResult publishes through buffered channels.
type Permissions struct {
	authority Authority
	registry  *Registry
	observer  Observer
}

// New creates a coordinator bound to authority. Pending-request state lives
// inside the returned instance; independent instances never share prompts.
func New(authority Authority, opts ...Option) *Permissions {
	p := &Permissions{
		authority: authority,
		registry:  NewRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsGranted reports whether every listed permission is already granted.
// It is a pure query against the authority and never touches pending
// request state. On platforms without runtime prompting it is always true.
func (p *Permissions) IsGranted(permissions ...string) (bool, error) {
	if len(permissions) == 0 {
		return false, ErrNoPermissions
	}
	if !p.authority.SupportsRuntimeRequests() {
		return true, nil
	}
	for _, perm := range permissions {
		if !p.authority.CheckGranted(perm) {
			return false, nil
		}
	}
	return true, nil
}

// Request asks for the listed permissions and returns a one-shot channel
// that yields true once every one of them has been granted, false as soon
// as all have been answered and at least one was denied, and is then
// closed. The channel resolves only after the last permission's answer.
//
// Permissions that are already pending from an earlier overlapping call are
// attached to, not re-requested: if caller A asked for CAMERA and STORAGE
// and caller B then asks for CAMERA alone, the platform sees one CAMERA
// prompt and both callers resolve from its single answer. Only permissions
// with no pending slot are sent to the authority, in one RequestGrants call
// tagged with an order-independent hash of that fresh subset.
//
// If the whole set is already granted, the returned channel resolves to
// true immediately and the authority is not asked to prompt.
func (p *Permissions) Request(permissions ...string) (<-chan bool, error) {
	granted, err := p.IsGranted(permissions...)
	if err != nil {
		return nil, err
	}
	if granted {
		for _, perm := range permissions {
			p.emit(EventShortCircuit, perm)
		}
		return resolved(true), nil
	}

	subs := make([]<-chan bool, 0, len(permissions))
	var fresh []string
	for _, perm := range permissions {
		slot, isNew := p.registry.GetOrCreate(perm)
		if isNew {
			fresh = append(fresh, perm)
		} else {
			p.emit(EventCoalesced, perm)
		}
		subs = append(subs, slot.Subscribe())
	}

	// Subscriptions are in place before the authority is asked, so an
	// authority that answers synchronously still finds every waiter.
	if len(fresh) > 0 {
		p.authority.RequestGrants(requestTag(fresh), fresh)
		for _, perm := range fresh {
			p.emit(EventRequested, perm)
		}
	}

	return combineAll(subs), nil
}

// OnGrantResult feeds the platform's asynchronous result callback back into
// the coordinator. The host must invoke it exactly once per RequestGrants
// call it forwarded, with permissions and grants as matching-length parallel
// slices. The tag is the routing token from the originating call; it is
// accepted for the host's convenience but results are matched by permission
// name.
//
// Each listed permission's pending slot is resolved and every waiter
// notified. A permission with no pending slot stops the loop and returns an
// error wrapping [ErrNoPendingRequest]; permissions resolved before the
// offending one stay resolved, and unrelated pending slots are untouched.
func (p *Permissions) OnGrantResult(tag int, permissions []string, grants []bool) error {
	if len(permissions) != len(grants) {
		return fmt.Errorf("%w: %d permissions, %d grants", ErrResultMismatch, len(permissions), len(grants))
	}
	for i, perm := range permissions {
		if !p.registry.Resolve(perm, grants[i]) {
			return fmt.Errorf("%w: %q", ErrNoPendingRequest, perm)
		}
		p.emit(EventResolved, perm)
	}
	return nil
}

// Pending returns the number of permissions with an outstanding prompt.
func (p *Permissions) Pending() int {
	return p.registry.Len()
}

func (p *Permissions) emit(event Event, permission string) {
	if p.observer == nil {
		return
	}
	p.observer.On(EventData{
		Event:      event,
		Permission: permission,
	})
}
