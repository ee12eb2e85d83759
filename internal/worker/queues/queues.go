package queues

const (
	QueueMaintenance = "maintenance"
)
