package gmail

// Email is the extracted view of a single message
type Email struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Snippet string `json:"snippet,omitempty"`
}
