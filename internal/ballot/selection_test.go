package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/backend"
)

func candidates(ids ...string) []backend.Candidate {
	result := make([]backend.Candidate, 0, len(ids))
	for _, id := range ids {
		result = append(result, backend.Candidate{CandidateID: id, Name: "candidate " + id})
	}
	return result
}

func TestSelection(t *testing.T) {
	tests := []struct {
		name       string
		candidates []backend.Candidate
		selected   string
		want       []int
		err        error
	}{
		{
			name:       "first",
			candidates: candidates("a", "b", "c"),
			selected:   "a",
			want:       []int{1, 0, 0},
		},
		{
			name:       "last",
			candidates: candidates("a", "b", "c"),
			selected:   "c",
			want:       []int{0, 0, 1},
		},
		{
			name:       "single",
			candidates: candidates("a"),
			selected:   "a",
			want:       []int{1},
		},
		{
			name:     "no candidates",
			selected: "a",
			err:      ErrNoCandidates,
		},
		{
			name:       "unknown",
			candidates: candidates("a", "b"),
			selected:   "z",
			err:        ErrUnknownCandidate,
		},
		{
			name:       "empty selection",
			candidates: candidates("a", "b"),
			selected:   "",
			err:        ErrUnknownCandidate,
		},
		{
			name:       "duplicate ids",
			candidates: candidates("a", "b", "a"),
			selected:   "b",
			err:        ErrDuplicateCandidate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Selection(tt.candidates, tt.selected)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			ones := 0
			for _, v := range got {
				ones += v
			}
			require.Equal(t, 1, ones)
		})
	}
}
