package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyStatus tracks where a company sits in the outreach funnel.
type CompanyStatus string

const (
	CompanyStatusNew          CompanyStatus = "NEW"
	CompanyStatusQualified    CompanyStatus = "QUALIFIED"
	CompanyStatusDisqualified CompanyStatus = "DISQUALIFIED"
	CompanyStatusCustomer     CompanyStatus = "CUSTOMER"
)

// Company represents one business discovered by a scan.
//
// Status is assigned exactly once when the scraped listing is normalized;
// nothing in this service re-scores a persisted company. DisqualifyReason is
// non-nil if and only if Status is DISQUALIFIED.
type Company struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	WebsiteURL       *string       `json:"website_url,omitempty"`
	GoogleMapsURL    *string       `json:"google_maps_url,omitempty"`
	Industry         string        `json:"industry"`
	Address          *string       `json:"address,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	HasSSL           bool          `json:"has_ssl"`
	PageSpeedScore   *int          `json:"pagespeed_score,omitempty"`
	IsWordPress      bool          `json:"is_wordpress"`
	CRMSystem        *string       `json:"crm_system,omitempty"`
	CompanyType      string        `json:"company_type"`
	EmployeeCount    string        `json:"employee_count"`
	RevenueRange     string        `json:"revenue_range"`
	Status           CompanyStatus `json:"status"`
	DisqualifyReason *string       `json:"disqualify_reason,omitempty"`
	SearchKeyword    *string       `json:"search_keyword,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
