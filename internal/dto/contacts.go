package dto

// UpdateContactStatusRequest marks an outreach draft as sent.
type UpdateContactStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
