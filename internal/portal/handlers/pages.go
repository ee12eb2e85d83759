package handlers

import (
	"net/http"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/domain"
	"github.com/truvote/portal/internal/portal/views"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

type signInForm struct {
	Email    string
	Username string
}

type conductForm struct {
	Title string
	Start string
	End   string
}

func HandleLanding(w http.ResponseWriter, r *http.Request) error {
	return render(w, http.StatusOK, views.PageLanding, newPage(r, "Welcome", routes.LandingRoute))
}

func HandleSignIn(w http.ResponseWriter, r *http.Request) error {
	return signInPage(w, r, http.StatusOK, "", signInForm{})
}

func signInPage(w http.ResponseWriter, r *http.Request, status int, message string, form signInForm) error {
	page := newPage(r, "Sign in", routes.SignInRoute)
	page.Error = message
	page.Data = form
	return render(w, status, views.PageSignIn, page)
}

func HandleOverview(w http.ResponseWriter, r *http.Request) error {
	page := newPage(r, "Overview", routes.OverviewRoute)
	page.ElectionID = electionID(r)
	status := http.StatusOK
	if page.ElectionID != "" {
		results, err := dic.GetService[domain.ElectionService]().Results(r.Context(), page.ElectionID)
		if err != nil {
			status, page.Error = failure(r, err)
		} else {
			page.Data = results
		}
	}
	return render(w, status, views.PageOverview, page)
}

func HandleVoters(w http.ResponseWriter, r *http.Request) error {
	return votersPage(w, r, http.StatusOK, "")
}

func votersPage(w http.ResponseWriter, r *http.Request, status int, message string) error {
	page := newPage(r, "Voters", routes.VotersRoute)
	page.Error = message
	voters, err := dic.GetService[domain.ElectionService]().Voters(r.Context())
	if err != nil {
		listStatus, listMessage := failure(r, err)
		if page.Error == "" {
			status, page.Error = listStatus, listMessage
		}
	} else {
		page.Data = voters
	}
	return render(w, status, views.PageVoters, page)
}

func HandleCandidates(w http.ResponseWriter, r *http.Request) error {
	return candidatesPage(w, r, http.StatusOK, "", views.PageCandidates, routes.CandidatesRoute, "Candidates")
}

func HandleVoteCast(w http.ResponseWriter, r *http.Request) error {
	return candidatesPage(w, r, http.StatusOK, "", views.PageVoteCast, routes.VoteCastRoute, "Cast your vote")
}

// candidatesPage backs both the admin candidate list and the voter ballot.
func candidatesPage(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	name string,
	current string,
	title string,
) error {
	page := newPage(r, title, current)
	page.Error = message
	page.ElectionID = electionID(r)
	if page.ElectionID != "" {
		candidates, err := dic.GetService[domain.ElectionService]().Candidates(r.Context(), page.ElectionID)
		if err != nil {
			listStatus, listMessage := failure(r, err)
			if page.Error == "" {
				status, page.Error = listStatus, listMessage
			}
		} else {
			page.Data = candidates
		}
	}
	return render(w, status, name, page)
}

func HandleConduct(w http.ResponseWriter, r *http.Request) error {
	return conductPage(w, r, http.StatusOK, "", conductForm{})
}

func conductPage(w http.ResponseWriter, r *http.Request, status int, message string, form conductForm) error {
	page := newPage(r, "Conduct an election", routes.ConductRoute)
	page.Error = message
	page.Data = form
	return render(w, status, views.PageConduct, page)
}

func HandleSuccess(w http.ResponseWriter, r *http.Request) error {
	page := newPage(r, "Thank you", routes.SuccessRoute)
	sess := session.FromContext(r.Context())
	status := http.StatusOK
	receipt, err := dic.GetService[domain.ElectionService]().Receipt(r.Context(), sess.VoterID)
	if err != nil {
		status, page.Error = failure(r, err)
	} else {
		page.Data = receipt
	}
	return render(w, status, views.PageSuccess, page)
}
