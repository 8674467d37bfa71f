package dto

// EnrichRequest asks for decision-maker discovery for a single company.
type EnrichRequest struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
}
