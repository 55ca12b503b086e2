package models

import "time"

// Patient is a demographic and medical-history profile, distinct from the
// User account that may belong to the same person.
type Patient struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	DateOfBirth      Date       `json:"date_of_birth"`
	Gender           string     `json:"gender"`
	Address          string     `json:"address,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	InsuranceInfo    string     `json:"insurance_info,omitempty"`
	MedicalHistory   string     `json:"medical_history,omitempty"`
	CreatedBy        int64      `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
