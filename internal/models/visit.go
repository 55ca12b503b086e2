package models

import "time"

// Visit is a dated clinical encounter for a Patient.
type Visit struct {
	ID           int64      `json:"id"`
	PatientID    int64      `json:"patient_id"`
	VisitDate    Date       `json:"visit_date"`
	VisitType    string     `json:"visit_type,omitempty"` // OPD or IPD
	Diagnosis    string     `json:"diagnosis,omitempty"`
	Prescription string     `json:"prescription,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedBy    int64      `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
