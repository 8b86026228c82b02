package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for asynchronous
// delivery. Verification-code emails never go through the queue (the sender
// must observe the result); the queue carries best-effort notifications.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "login_notification"
	Data     map[string]any `json:"data,omitempty"`
}
