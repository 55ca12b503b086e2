package models

import "time"

// MedicalRecord is a clinical entry about a patient user. PatientID and
// CreatedBy both reference users; CreatedBy is always the authenticated
// author, never client input.
type MedicalRecord struct {
	ID        int64 `json:"id"`
	PatientID int64 `json:"patient_id"`
	CreatedBy int64 `json:"created_by"`

	PatientName    string `json:"patient_name"`
	PatientAge     int    `json:"patient_age"`
	PatientGender  string `json:"patient_gender"`
	PatientContact string `json:"patient_contact,omitempty"`

	Diagnosis     string `json:"diagnosis"`
	Symptoms      string `json:"symptoms,omitempty"`
	TreatmentPlan string `json:"treatment_plan,omitempty"`
	Medications   string `json:"medications,omitempty"`
	Allergies     string `json:"allergies,omitempty"`
	VitalSigns    string `json:"vital_signs,omitempty"`
	LabResults    string `json:"lab_results,omitempty"`
	Notes         string `json:"notes,omitempty"`

	IsConfidential bool      `json:"is_confidential"`
	RecordDate     time.Time `json:"record_date"`
	LastUpdated    time.Time `json:"last_updated"`
}
