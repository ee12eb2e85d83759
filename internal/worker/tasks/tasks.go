package tasks

const (
	TypePurgeSessions = "session:purge"
)
