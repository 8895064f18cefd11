package rxpermissions

// Authority is the platform permission runtime the coordinator talks to.
// Implementations must be safe for concurrent use; RequestGrants may be
// called from any goroutine that calls [Permissions.Request].
type Authority interface {
	// RequestGrants asks the platform to prompt the user for the given
	// permissions. The call is asynchronous: the outcome arrives later
	// through [Permissions.OnGrantResult], forwarded by the host. The tag
	// is a routing token for platforms whose callback carries the integer
	// code of the originating call; results are matched by permission
	// name, never by tag.
	RequestGrants(tag int, permissions []string)

	// CheckGranted reports whether a single permission is already granted.
	CheckGranted(permission string) bool

	// SupportsRuntimeRequests reports whether the platform can prompt at
	// runtime at all. When false, every permission is treated as granted
	// up front and no prompt is ever issued.
	SupportsRuntimeRequests() bool
}

// PreGranted is an [Authority] for platforms without runtime prompting:
// every permission is considered granted and no prompt is ever issued.
type PreGranted struct{}

func (PreGranted) RequestGrants(int, []string) {}

func (PreGranted) CheckGranted(string) bool { return true }

func (PreGranted) SupportsRuntimeRequests() bool { return false }
