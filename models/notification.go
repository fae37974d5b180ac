package models

// Severity classifies notifications by urgency.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

func (s Severity) Valid() bool {
	return s == SeverityInfo || s == SeverityWarning || s == SeverityDanger
}

// Notification is ephemeral: regenerated on every evaluation, never stored.
type Notification struct {
	ID              string   `json:"id"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
	RelatedDate     string   `json:"date,omitempty"`
	RelatedCategory string   `json:"category,omitempty"`
}
