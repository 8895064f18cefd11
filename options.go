package rxpermissions

// Option configures a Permissions instance created by New.
type Option func(*Permissions)

// WithObserver attaches an Observer that receives requested, coalesced,
// short-circuit, and resolved events for the lifetime of the instance.
func WithObserver(o Observer) Option {
	return func(p *Permissions) {
		p.observer = o
	}
}
