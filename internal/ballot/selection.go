package ballot

import (
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/backend"
)

var (
	ErrNoCandidates       = errors.New("the election has no candidates")
	ErrUnknownCandidate   = errors.New("unknown candidate")
	ErrDuplicateCandidate = errors.New("duplicate candidate")
)

// Selection builds the one hot vote vector, in candidate order, for selectedID.
func Selection(candidates []backend.Candidate, selectedID string) ([]int, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	seen := make(map[string]struct{}, len(candidates))
	vote := make([]int, len(candidates))
	found := false
	for i, candidate := range candidates {
		if _, ok := seen[candidate.CandidateID]; ok {
			return nil, errors.Wrapf(ErrDuplicateCandidate, "%q", candidate.CandidateID)
		}
		seen[candidate.CandidateID] = struct{}{}
		if candidate.CandidateID == selectedID {
			vote[i] = 1
			found = true
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrUnknownCandidate, "%q", selectedID)
	}
	return vote, nil
}
