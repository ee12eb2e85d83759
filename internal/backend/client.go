package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	internalhttp "github.com/truvote/portal/internal/http"
	"github.com/truvote/portal/internal/logger"
)

// Client talks to the election backend. Calls are never retried, a failure is
// reported to the caller as is.
//
//go:generate mockery --with-expecter --name Client
type Client interface {
	AdminLogin(ctx context.Context, credentials Credentials) (string, error)
	AdminCreate(ctx context.Context, credentials Credentials) (string, error)
	VoterLookup(ctx context.Context, email string) (string, error)
	RegisterVoter(ctx context.Context, voter Voter) (string, error)
	ListVoters(ctx context.Context) ([]Voter, error)
	DeleteVoter(ctx context.Context, voterID string) error
	ListCandidates(ctx context.Context, electionID string) ([]Candidate, error)
	CreateCandidate(ctx context.Context, candidate Candidate) (string, error)
	CreateElection(ctx context.Context, election Election) (string, error)
	CastVote(ctx context.Context, ballot Ballot) (string, error)
	VoteReceipt(ctx context.Context, voterID string) (*Receipt, error)
	ElectionResults(ctx context.Context, electionID string) (*Results, error)
}

type client struct {
	http    internalhttp.Client
	baseURL *url.URL
	log     logger.Logger
}

func NewClient(httpClient internalhttp.Client, baseURL *url.URL, log logger.Logger) *client {
	return &client{http: httpClient, baseURL: baseURL, log: log}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *client) do(ctx context.Context, endpoint, method string, path []string, in any, out any) error {
	segments := make([]string, len(path))
	for i, segment := range path {
		segments[i] = url.PathEscape(segment)
	}
	target := c.baseURL.JoinPath(segments...)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "unable to encode backend request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(withEndpoint(ctx, endpoint), method, target.String(), body)
	if err != nil {
		return errors.Wrap(err, "unable to create backend request")
	}
	req.Header.Set("accept", "application/json")
	if in != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "unable to reach backend for %s", endpoint)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "error while reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(respBody, &errResp)
		c.log.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"error":    errResp.Error,
		}).Debug("backend call failed")
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "unable to decode %s response", endpoint)
	}
	return nil
}

func (c *client) AdminLogin(ctx context.Context, credentials Credentials) (string, error) {
	var resp idResponse
	err := c.do(ctx, "admin_login", http.MethodPost, []string{"api", "admin", "login"}, credentials, &resp)
	return resp.AdminID, err
}

func (c *client) AdminCreate(ctx context.Context, credentials Credentials) (string, error) {
	var resp idResponse
	err := c.do(ctx, "admin_create", http.MethodPost, []string{"api", "admin", "create"}, credentials, &resp)
	return resp.AdminID, err
}

func (c *client) VoterLookup(ctx context.Context, email string) (string, error) {
	var resp idResponse
	err := c.do(ctx, "voter_lookup", http.MethodPost, []string{"api", "voter"}, map[string]string{"email": email}, &resp)
	if err != nil {
		return "", err
	}
	if resp.VoterID == "" {
		return "", errors.New("backend returned no voter id")
	}
	return resp.VoterID, nil
}

func (c *client) RegisterVoter(ctx context.Context, voter Voter) (string, error) {
	var resp idResponse
	err := c.do(ctx, "voter_register", http.MethodPost, []string{"api", "voter", "register"}, voter, &resp)
	return resp.VoterID, err
}

func (c *client) ListVoters(ctx context.Context) ([]Voter, error) {
	var voters []Voter
	err := c.do(ctx, "voter_list", http.MethodGet, []string{"api", "voters"}, nil, &voters)
	return voters, err
}

func (c *client) DeleteVoter(ctx context.Context, voterID string) error {
	return c.do(ctx, "voter_delete", http.MethodDelete, []string{"api", "voter", voterID}, nil, nil)
}

func (c *client) ListCandidates(ctx context.Context, electionID string) ([]Candidate, error) {
	var candidates []Candidate
	err := c.do(ctx, "candidate_list", http.MethodGet, []string{"api", "candidates", electionID}, nil, &candidates)
	return candidates, err
}

func (c *client) CreateCandidate(ctx context.Context, candidate Candidate) (string, error) {
	var resp idResponse
	err := c.do(ctx, "candidate_create", http.MethodPost, []string{"api", "candidate", "create"}, candidate, &resp)
	return resp.CandidateID, err
}

func (c *client) CreateElection(ctx context.Context, election Election) (string, error) {
	var resp idResponse
	err := c.do(ctx, "election_create", http.MethodPost, []string{"api", "election", "create"}, election, &resp)
	return resp.ElectionID, err
}

func (c *client) CastVote(ctx context.Context, ballot Ballot) (string, error) {
	var resp idResponse
	err := c.do(ctx, "vote_cast", http.MethodPost, []string{"api", "vote", "cast"}, ballot, &resp)
	return resp.VoteID, err
}

func (c *client) VoteReceipt(ctx context.Context, voterID string) (*Receipt, error) {
	var receipt Receipt
	err := c.do(ctx, "vote_receipt", http.MethodGet, []string{"api", "vote", "receipt", voterID}, nil, &receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *client) ElectionResults(ctx context.Context, electionID string) (*Results, error) {
	var results Results
	err := c.do(ctx, "election_results", http.MethodGet, []string{"api", "election", electionID, "results"}, nil, &results)
	if err != nil {
		return nil, err
	}
	return &results, nil
}
