package authorization

type DecisionKind int

const (
	Allow DecisionKind = iota
	RedirectToSignIn
	RedirectToRoleDefault
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectToSignIn:
		return "redirect_signin"
	case RedirectToRoleDefault:
		return "redirect_role_default"
	}
	return "unknown"
}

// Decision is the outcome of a route check. Path is only set for redirects.
type Decision struct {
	Kind DecisionKind
	Path string
}

func (d Decision) Allowed() bool {
	return d.Kind == Allow
}
