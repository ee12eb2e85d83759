package routes

import (
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/session"
)

var ErrInvalidTable = errors.New("invalid route table")

// Rule binds a page path to the role needed to see it. A RequiredRole of
// session.RoleNone makes the page public.
type Rule struct {
	Name         string
	Path         string
	RequiredRole session.Role
}

func (r Rule) Public() bool {
	return r.RequiredRole == session.RoleNone
}

type Table struct {
	rules      []Rule
	byPath     map[string]Rule
	byName     map[string]Rule
	defaults   map[session.Role]string
	signInPath string
}

func DefaultRules() []Rule {
	return []Rule{
		{Name: LandingRoute, Path: "/", RequiredRole: session.RoleNone},
		{Name: SignInRoute, Path: "/signin", RequiredRole: session.RoleNone},
		{Name: OverviewRoute, Path: "/overview", RequiredRole: session.RoleAdmin},
		{Name: VotersRoute, Path: "/voter", RequiredRole: session.RoleAdmin},
		{Name: CandidatesRoute, Path: "/candidate", RequiredRole: session.RoleAdmin},
		{Name: ConductRoute, Path: "/conduct", RequiredRole: session.RoleAdmin},
		{Name: VoteCastRoute, Path: "/votecast", RequiredRole: session.RoleVoter},
		{Name: SuccessRoute, Path: "/success", RequiredRole: session.RoleVoter},
	}
}

func DefaultRoleDefaults() map[session.Role]string {
	return map[session.Role]string{
		session.RoleAdmin: "/overview",
		session.RoleVoter: "/votecast",
	}
}

// NewTable builds and validates a table, an invalid table is never returned.
func NewTable(rules []Rule, defaults map[session.Role]string, signInPath string) (*Table, error) {
	t := &Table{
		rules:      append([]Rule(nil), rules...),
		byPath:     make(map[string]Rule, len(rules)),
		byName:     make(map[string]Rule, len(rules)),
		defaults:   make(map[session.Role]string, len(defaults)),
		signInPath: signInPath,
	}
	for role, path := range defaults {
		t.defaults[role] = path
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func MustDefaultTable() *Table {
	t, err := NewTable(DefaultRules(), DefaultRoleDefaults(), "/signin")
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that every path is declared once, that every role able to
// authenticate owns exactly one default page requiring that very role and
// that the sign in page is public. Any other shape could redirect in a loop.
func (t *Table) Validate() error {
	t.byPath = make(map[string]Rule, len(t.rules))
	t.byName = make(map[string]Rule, len(t.rules))
	for _, rule := range t.rules {
		if rule.Path == "" || rule.Path[0] != '/' {
			return errors.Wrapf(ErrInvalidTable, "path %q of rule %q must start with /", rule.Path, rule.Name)
		}
		if !rule.RequiredRole.Valid() {
			return errors.Wrapf(ErrInvalidTable, "rule %q requires an unknown role", rule.Name)
		}
		if _, exists := t.byPath[rule.Path]; exists {
			return errors.Wrapf(ErrInvalidTable, "path %q is declared twice", rule.Path)
		}
		if _, exists := t.byName[rule.Name]; exists {
			return errors.Wrapf(ErrInvalidTable, "rule name %q is declared twice", rule.Name)
		}
		t.byPath[rule.Path] = rule
		t.byName[rule.Name] = rule
	}

	signIn, ok := t.byPath[t.signInPath]
	if !ok {
		return errors.Wrapf(ErrInvalidTable, "sign in path %q is not declared", t.signInPath)
	}
	if !signIn.Public() {
		return errors.Wrapf(ErrInvalidTable, "sign in path %q must be public", t.signInPath)
	}

	if _, ok := t.defaults[session.RoleNone]; ok {
		return errors.Wrap(ErrInvalidTable, "unauthenticated sessions cannot have a default path")
	}
	for _, role := range session.Roles() {
		path, ok := t.defaults[role]
		if !ok {
			return errors.Wrapf(ErrInvalidTable, "role %s has no default path", role)
		}
		rule, ok := t.byPath[path]
		if !ok {
			return errors.Wrapf(ErrInvalidTable, "default path %q of role %s is not declared", path, role)
		}
		if rule.RequiredRole != role {
			return errors.Wrapf(
				ErrInvalidTable,
				"default path %q of role %s requires role %s",
				path, role, rule.RequiredRole,
			)
		}
	}
	for role := range t.defaults {
		if !role.Valid() {
			return errors.Wrapf(ErrInvalidTable, "default path declared for unknown role %d", int(role))
		}
	}
	return nil
}

func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

func (t *Table) RuleFor(path string) (Rule, bool) {
	rule, ok := t.byPath[path]
	return rule, ok
}

func (t *Table) Rule(name string) (Rule, bool) {
	rule, ok := t.byName[name]
	return rule, ok
}

func (t *Table) DefaultPathFor(role session.Role) (string, bool) {
	path, ok := t.defaults[role]
	return path, ok
}

func (t *Table) SignInPath() string {
	return t.signInPath
}

// IsPathAllowedFor fails closed: unknown paths and unknown roles are denied.
func (t *Table) IsPathAllowedFor(role session.Role, path string) bool {
	rule, ok := t.byPath[path]
	if !ok || !role.Valid() {
		return false
	}
	if rule.Public() {
		return true
	}
	return rule.RequiredRole == role
}
