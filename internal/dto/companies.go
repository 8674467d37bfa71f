package dto

// ListFilter contains query parameters for company listing endpoints.
type ListFilter struct {
	Q       string
	Status  string
	Keyword string
	Page    int
	PerPage int
}
