package dto

// ScanRequest is the payload used by the scan endpoint.
type ScanRequest struct {
	Keyword string `json:"keyword"`
}
