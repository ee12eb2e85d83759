package backend

import "time"

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Voter struct {
	VoterID   string `json:"voter_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Gender    string `json:"gender,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

type Candidate struct {
	CandidateID string `json:"candidate_id,omitempty" msgpack:"candidate_id"`
	ElectionID  string `json:"election_id" msgpack:"election_id"`
	Name        string `json:"name" msgpack:"name"`
	PartyName   string `json:"party_name" msgpack:"party_name"`
}

type Election struct {
	ElectionID   string    `json:"election_id,omitempty"`
	ElectionName string    `json:"election_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// Ballot carries the one hot selection, encryption is the backend's concern.
type Ballot struct {
	ElectionID string `json:"election_id"`
	VoterID    string `json:"voter_id"`
	Vote       []int  `json:"vote"`
}

type Receipt struct {
	VoterID   string `json:"voter_id"`
	VotedFor  string `json:"voted_for"`
	CreatedAt string `json:"created_at"`
}

type Results struct {
	TotalVotes int            `json:"total_votes"`
	Results    map[string]int `json:"results"`
}

type idResponse struct {
	AdminID     string `json:"admin_id"`
	VoterID     string `json:"voter_id"`
	ElectionID  string `json:"election_id"`
	CandidateID string `json:"candidate_id"`
	VoteID      string `json:"vote_id"`
}
