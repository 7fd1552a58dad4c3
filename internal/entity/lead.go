package entity

type LeadRecord struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	BodyExcerpt string `json:"reply_summary"`
	ReplyBody   string `json:"reply_body"`
	Subject     string `json:"subject,omitempty"`
	Timestamp   string `json:"timestamp"`
	SourceID    string `json:"source_id"`
	ThreadID    string `json:"thread_id,omitempty"`
}
