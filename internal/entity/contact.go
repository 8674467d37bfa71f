package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seniority classifies a contact's level inside the company.
type Seniority string

const (
	SeniorityCLevel   Seniority = "C-Level"
	SeniorityVP       Seniority = "VP"
	SeniorityDirector Seniority = "Director"
	SeniorityManager  Seniority = "Manager"
	SeniorityIC       Seniority = "Individual Contributor"
	SeniorityUnknown  Seniority = "Unknown"
)

// IsPrimaryDecisionMaker reports whether this seniority level counts as a
// primary decision maker for outreach prioritisation.
func (s Seniority) IsPrimaryDecisionMaker() bool {
	switch s {
	case SeniorityCLevel, SeniorityVP, SeniorityDirector:
		return true
	default:
		return false
	}
}

// ContactStatus tracks outreach progress for a single contact. The only
// transition is NEW -> CONTACTED, triggered by the user marking a draft sent.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "NEW"
	ContactStatusContacted ContactStatus = "CONTACTED"
)

// Contact is one decision maker discovered for a company. Email is never
// populated by the enrichment pipeline; it exists for manual completion.
type Contact struct {
	ID                     uuid.UUID     `json:"id"`
	CompanyID              uuid.UUID     `json:"company_id"`
	FullName               string        `json:"full_name"`
	Position               string        `json:"position"`
	Seniority              Seniority     `json:"seniority"`
	Language               string        `json:"language"`
	YearsInCompany         string        `json:"years_in_company"`
	LinkedInURL            *string       `json:"linkedin_url,omitempty"`
	TwitterURL             *string       `json:"twitter_url,omitempty"`
	FacebookURL            *string       `json:"facebook_url,omitempty"`
	Email                  *string       `json:"email,omitempty"`
	IsPrimaryDecisionMaker bool          `json:"is_primary_decision_maker"`
	Status                 ContactStatus `json:"status"`
	CreatedAt              time.Time     `json:"created_at"`
}
