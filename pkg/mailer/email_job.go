package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a known template rendered by the worker; Text/HTML are
// used verbatim when Template is empty.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "program_confirmation"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateProgramConfirmation is sent when a visitor adds a conference to
// their personal program.
const TemplateProgramConfirmation = "program_confirmation"
