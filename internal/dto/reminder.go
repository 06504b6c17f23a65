package dto

// ReminderLinkResponse carries a prefilled WhatsApp deep link for
// nudging a flat about its pending dues.
type ReminderLinkResponse struct {
	PeriodID string `json:"periodID"`
	FlatNo   string `json:"flatNo"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message"`
	Link     string `json:"link"`
}
