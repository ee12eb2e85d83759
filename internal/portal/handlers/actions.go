package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/domain"
	internalerrors "github.com/truvote/portal/internal/errors"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/portal/views"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

// datetime-local inputs carry no zone, they are read in the server zone.
const dateTimeLocal = "2006-01-02T15:04"

// signIn installs sess and sends the browser to the default page of its role.
func signIn(w http.ResponseWriter, r *http.Request, sess session.Session) error {
	if err := dic.GetService[*session.Manager]().Set(w, r, sess); err != nil {
		return internalerrors.Wrap(err, http.StatusInternalServerError).
			WithUserMessage("Unable to open your session, please try again.")
	}
	table := dic.GetService[*authorization.RouteGuard]().Table()
	target, ok := table.DefaultPathFor(sess.Role)
	if !ok {
		target = table.SignInPath()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
	return nil
}

func HandleSignInVoter(w http.ResponseWriter, r *http.Request) error {
	form := signInForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
	sess, err := dic.GetService[domain.AuthService]().SignInVoter(r.Context(), form.Email)
	if err != nil {
		status, message := failure(r, err)
		if backend.IsNotFound(err) {
			message = "No voter is registered with this email address."
		}
		return signInPage(w, r, status, message, form)
	}
	return signIn(w, r, sess)
}

func HandleSignInAdmin(w http.ResponseWriter, r *http.Request) error {
	form := signInForm{Username: strings.TrimSpace(r.PostFormValue("username"))}
	sess, err := dic.GetService[domain.AuthService]().SignInAdmin(
		r.Context(),
		form.Username,
		r.PostFormValue("password"),
	)
	if err != nil {
		status, message := failure(r, err)
		return signInPage(w, r, status, message, form)
	}
	return signIn(w, r, sess)
}

func HandleSignUpAdmin(w http.ResponseWriter, r *http.Request) error {
	form := signInForm{Username: strings.TrimSpace(r.PostFormValue("username"))}
	sess, err := dic.GetService[domain.AuthService]().SignUpAdmin(
		r.Context(),
		form.Username,
		r.PostFormValue("password"),
	)
	if err != nil {
		status, message := failure(r, err)
		return signInPage(w, r, status, message, form)
	}
	return signIn(w, r, sess)
}

// HandleSignOut always ends on the sign in page, the cookie is expired even
// when the stored record could not be removed.
func HandleSignOut(w http.ResponseWriter, r *http.Request) error {
	if err := dic.GetService[*session.Manager]().Clear(w, r); err != nil {
		dic.GetService[logger.Logger]().WithError(err).Warn("unable to delete session record")
	}
	return redirect(w, r, routes.SignInRoute, nil)
}

func HandleAddVoter(w http.ResponseWriter, r *http.Request) error {
	_, err := dic.GetService[domain.ElectionService]().AddVoter(r.Context(), backend.Voter{
		Name:   r.PostFormValue("name"),
		Email:  r.PostFormValue("email"),
		Gender: r.PostFormValue("gender"),
	})
	if err != nil {
		status, message := failure(r, err)
		return votersPage(w, r, status, message)
	}
	return redirect(w, r, routes.VotersRoute, nil)
}

func HandleDeleteVoter(w http.ResponseWriter, r *http.Request) error {
	err := dic.GetService[domain.ElectionService]().RemoveVoter(r.Context(), r.PostFormValue("voter_id"))
	if err != nil {
		status, message := failure(r, err)
		return votersPage(w, r, status, message)
	}
	return redirect(w, r, routes.VotersRoute, nil)
}

func HandleAddCandidate(w http.ResponseWriter, r *http.Request) error {
	election := electionID(r)
	_, err := dic.GetService[domain.ElectionService]().AddCandidate(r.Context(), backend.Candidate{
		ElectionID: election,
		Name:       r.PostFormValue("name"),
		PartyName:  r.PostFormValue("party_name"),
	})
	if err != nil {
		status, message := failure(r, err)
		return candidatesPage(w, r, status, message, views.PageCandidates, routes.CandidatesRoute, "Candidates")
	}
	return redirect(w, r, routes.CandidatesRoute, electionQuery(election))
}

func parseDateTime(value string) time.Time {
	t, err := time.ParseInLocation(dateTimeLocal, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HandleCreateElection leads to the candidate page of the new election.
func HandleCreateElection(w http.ResponseWriter, r *http.Request) error {
	form := conductForm{
		Title: r.PostFormValue("title"),
		Start: r.PostFormValue("start"),
		End:   r.PostFormValue("end"),
	}
	id, err := dic.GetService[domain.ElectionService]().Conduct(r.Context(), backend.Election{
		ElectionName: form.Title,
		StartTime:    parseDateTime(form.Start),
		EndTime:      parseDateTime(form.End),
	})
	if err != nil {
		status, message := failure(r, err)
		return conductPage(w, r, status, message, form)
	}
	return redirect(w, r, routes.CandidatesRoute, electionQuery(id))
}

func HandleCastVote(w http.ResponseWriter, r *http.Request) error {
	sess := session.FromContext(r.Context())
	election := electionID(r)
	_, err := dic.GetService[domain.ElectionService]().CastVote(
		r.Context(),
		sess.VoterID,
		election,
		r.PostFormValue("candidate"),
	)
	if err != nil {
		status, message := failure(r, err)
		return candidatesPage(w, r, status, message, views.PageVoteCast, routes.VoteCastRoute, "Cast your vote")
	}
	return redirect(w, r, routes.SuccessRoute, electionQuery(election))
}
