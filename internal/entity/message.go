package entity

import "time"

// InboundMessage is a single upstream email normalized across platforms.
type InboundMessage struct {
	ID        string
	FromEmail string
	FromName  string
	Subject   string
	Body      string
	Timestamp time.Time
	ThreadID  string
	// Received is false for messages the workspace itself sent.
	Received bool
}

// MessagePage is one page of an upstream listing. An empty NextCursor means
// the listing is exhausted.
type MessagePage struct {
	Messages   []InboundMessage
	NextCursor string
}
