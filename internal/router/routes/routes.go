package routes

const (
	LandingRoute    string = "landing"
	SignInRoute     string = "signin"
	OverviewRoute   string = "overview"
	VotersRoute     string = "voters"
	CandidatesRoute string = "candidates"
	ConductRoute    string = "conduct"
	VoteCastRoute   string = "votecast"
	SuccessRoute    string = "success"
)

// Form targets, each one is guarded by the rule of the page it belongs to.
const (
	SignInVoterRoute    string = "signin_voter"
	SignInAdminRoute    string = "signin_admin"
	SignUpAdminRoute    string = "signup_admin"
	SignOutRoute        string = "signout"
	AddVoterRoute       string = "voter_add"
	DeleteVoterRoute    string = "voter_delete"
	AddCandidateRoute   string = "candidate_add"
	CreateElectionRoute string = "election_create"
	CastVoteRoute       string = "vote_cast"
	MetricsRoute        string = "metrics"
)
