package dto

// DraftRequest carries the prospect context used to generate a cold email.
type DraftRequest struct {
	ContactName string `json:"contactName"`
	Position    string `json:"position"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	HasSSL      bool   `json:"hasSSL"`
	PageSpeed   *int   `json:"pageSpeed"`
}

// Draft is a generated outreach message, not yet sent by this system.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
