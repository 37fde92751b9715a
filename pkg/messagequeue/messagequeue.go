package messagequeue

// MessageQueue defines the interface for message queue services.
type MessageQueue interface {
	// Publish sends a JSON message body to the named queue.
	Publish(queueName string, body []byte) error
	Close() error
}
