package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// RecordCreate is the payload for POST /records. The creator is taken from
// the authenticated caller, so it has no created_by field.
type RecordCreate struct {
	PatientID      int64  `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	PatientAge     int    `json:"patient_age"`
	PatientGender  string `json:"patient_gender"`
	PatientContact string `json:"patient_contact"`
	Diagnosis      string `json:"diagnosis"`
	Symptoms       string `json:"symptoms"`
	TreatmentPlan  string `json:"treatment_plan"`
	Medications    string `json:"medications"`
	Allergies      string `json:"allergies"`
	VitalSigns     string `json:"vital_signs"`
	LabResults     string `json:"lab_results"`
	Notes          string `json:"notes"`
	IsConfidential bool   `json:"is_confidential"`
}

func (r RecordCreate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.PatientName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.PatientAge, validation.Min(0), validation.Max(150)),
		validation.Field(&r.PatientGender, validation.Required, validation.Length(1, 10)),
		validation.Field(&r.PatientContact, validation.Length(0, 20)),
		validation.Field(&r.Diagnosis, validation.Required),
	)
}

// RecordUpdate is the payload for PUT /records/{id}. Only fields the caller
// supplies are applied; nil pointers leave the stored value untouched.
type RecordUpdate struct {
	Diagnosis      *string `json:"diagnosis"`
	Symptoms       *string `json:"symptoms"`
	TreatmentPlan  *string `json:"treatment_plan"`
	Medications    *string `json:"medications"`
	Allergies      *string `json:"allergies"`
	VitalSigns     *string `json:"vital_signs"`
	LabResults     *string `json:"lab_results"`
	Notes          *string `json:"notes"`
	IsConfidential *bool   `json:"is_confidential"`
}

func (r RecordUpdate) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Diagnosis, validation.NilOrNotEmpty),
	)
}
