// Package rxpermissions coalesces overlapping runtime permission requests.
//
// A host application usually has many call sites that each need one or more
// permissions, and several of them can ask for the same permission while a
// prompt for it is already pending. rxpermissions keys every outstanding
// request by permission name, asks the platform at most once per pending
// permission, and fans the eventual answer out to every caller who asked —
// including callers who asked for a whole set of permissions at once.
//
// Wire the platform in through [Authority], then request:
//
//	p := rxpermissions.New(authority)
//
//	result, err := p.Request("CAMERA", "STORAGE")
//	if err != nil {
//		// empty permission list
//	}
//	granted := <-result // resolves once the platform has answered everything
//
// The host forwards the platform's asynchronous result callback to
// [Permissions.OnGrantResult]; that is the only inbound plumbing required.
//
// A multi-permission request resolves to true only when every requested
// permission was granted, and only after the last of them has been answered.
// Sets that are already granted resolve immediately without touching the
// platform. Results are not memoized: once a permission's answer has been
// delivered, a later request for it starts a fresh prompt.
package rxpermissions
