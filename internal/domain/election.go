package domain

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/ballot"
	"github.com/truvote/portal/internal/cache"
	"github.com/truvote/portal/internal/logger"
)

//go:generate mockery --with-expecter --name=ElectionService
type ElectionService interface {
	Candidates(ctx context.Context, electionID string) ([]backend.Candidate, error)
	AddCandidate(ctx context.Context, candidate backend.Candidate) (string, error)
	Voters(ctx context.Context) ([]backend.Voter, error)
	AddVoter(ctx context.Context, voter backend.Voter) (string, error)
	RemoveVoter(ctx context.Context, voterID string) error
	Conduct(ctx context.Context, election backend.Election) (string, error)
	CastVote(ctx context.Context, voterID, electionID, candidateID string) (string, error)
	Receipt(ctx context.Context, voterID string) (*backend.Receipt, error)
	Results(ctx context.Context, electionID string) (*backend.Results, error)
}

type electionService struct {
	log        logger.Logger
	backend    backend.Client
	candidates cache.Cache[[]backend.Candidate]
}

func NewElectionService(
	log logger.Logger,
	client backend.Client,
	candidateCache cache.Cache[[]backend.Candidate],
) *electionService {
	return &electionService{
		log:        log,
		backend:    client,
		candidates: candidateCache,
	}
}

func requireElection(electionID string) error {
	if strings.TrimSpace(electionID) == "" {
		return invalid("No election selected.")
	}
	return nil
}

func (s *electionService) Candidates(ctx context.Context, electionID string) ([]backend.Candidate, error) {
	if err := requireElection(electionID); err != nil {
		return nil, err
	}
	cached, err := s.candidates.Get(ctx, electionID)
	if err == nil {
		return *cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.WithError(err).Warn("unable to read candidates from cache")
	}

	candidates, err := s.backend.ListCandidates(ctx, electionID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list candidates")
	}
	if err := s.candidates.Set(ctx, electionID, candidates); err != nil {
		s.log.WithError(err).Warn("unable to cache candidates")
	}
	return candidates, nil
}

func (s *electionService) AddCandidate(ctx context.Context, candidate backend.Candidate) (string, error) {
	if err := requireElection(candidate.ElectionID); err != nil {
		return "", err
	}
	candidate.Name = cleanText(candidate.Name)
	candidate.PartyName = cleanText(candidate.PartyName)
	if candidate.Name == "" {
		return "", invalid("The candidate name is required.")
	}
	id, err := s.backend.CreateCandidate(ctx, candidate)
	if err != nil {
		return "", errors.Wrap(err, "unable to create candidate")
	}
	if err := s.candidates.Delete(ctx, candidate.ElectionID); err != nil {
		s.log.WithError(err).Warn("unable to invalidate candidates cache")
	}
	return id, nil
}

func (s *electionService) Voters(ctx context.Context) ([]backend.Voter, error) {
	voters, err := s.backend.ListVoters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list voters")
	}
	return voters, nil
}

func (s *electionService) AddVoter(ctx context.Context, voter backend.Voter) (string, error) {
	voter.Name = cleanText(voter.Name)
	voter.Gender = cleanText(voter.Gender)
	if voter.Name == "" {
		return "", invalid("The voter name is required.")
	}
	email, err := normalizeEmail(voter.Email)
	if err != nil {
		return "", err
	}
	voter.Email = email
	id, err := s.backend.RegisterVoter(ctx, voter)
	if err != nil {
		return "", errors.Wrap(err, "unable to register voter")
	}
	return id, nil
}

func (s *electionService) RemoveVoter(ctx context.Context, voterID string) error {
	if strings.TrimSpace(voterID) == "" {
		return invalid("No voter selected.")
	}
	if err := s.backend.DeleteVoter(ctx, voterID); err != nil {
		return errors.Wrap(err, "unable to delete voter")
	}
	return nil
}

func (s *electionService) Conduct(ctx context.Context, election backend.Election) (string, error) {
	election.ElectionName = cleanText(election.ElectionName)
	if election.ElectionName == "" {
		return "", invalid("The election title is required.")
	}
	if election.StartTime.IsZero() || election.EndTime.IsZero() {
		return "", invalid("The election needs a start and an end date.")
	}
	if !election.StartTime.Before(election.EndTime) {
		return "", invalid("The election must start before it ends.")
	}
	id, err := s.backend.CreateElection(ctx, election)
	if err != nil {
		return "", errors.Wrap(err, "unable to create election")
	}
	s.log.WithField("election_id", id).Info("election created")
	return id, nil
}

func (s *electionService) CastVote(ctx context.Context, voterID, electionID, candidateID string) (string, error) {
	if voterID == "" {
		return "", invalid("Your session has no voter id, please sign in again.")
	}
	candidates, err := s.Candidates(ctx, electionID)
	if err != nil {
		return "", err
	}
	vote, err := ballot.Selection(candidates, candidateID)
	if err != nil {
		if errors.Is(err, ballot.ErrUnknownCandidate) {
			return "", invalid("Please select a candidate.")
		}
		if errors.Is(err, ballot.ErrNoCandidates) {
			return "", invalid("This election has no candidates yet.")
		}
		return "", err
	}
	voteID, err := s.backend.CastVote(ctx, backend.Ballot{ElectionID: electionID, VoterID: voterID, Vote: vote})
	if err != nil {
		return "", errors.Wrap(err, "unable to cast vote")
	}
	s.log.WithField("vote_id", voteID).Debug("vote cast")
	return voteID, nil
}

func (s *electionService) Receipt(ctx context.Context, voterID string) (*backend.Receipt, error) {
	if voterID == "" {
		return nil, invalid("Your session has no voter id, please sign in again.")
	}
	receipt, err := s.backend.VoteReceipt(ctx, voterID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vote receipt")
	}
	return receipt, nil
}

func (s *electionService) Results(ctx context.Context, electionID string) (*backend.Results, error) {
	if err := requireElection(electionID); err != nil {
		return nil, err
	}
	results, err := s.backend.ElectionResults(ctx, electionID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch election results")
	}
	return results, nil
}
