package models

// QueueStatus describes the durable notification queue.
// swagger:model QueueStatus
type QueueStatus struct {
	Connected     bool   `json:"connected"`
	QueueName     string `json:"queueName,omitempty"`
	MessageCount  int    `json:"messageCount"`
	ConsumerCount int    `json:"consumerCount"`
	Error         string `json:"error,omitempty"`
}
