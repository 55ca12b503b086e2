package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/clinicbase/medrec-be/internal/models"
)

// VisitCreate is the payload for POST /visits.
type VisitCreate struct {
	PatientID    int64       `json:"patient_id"`
	VisitDate    models.Date `json:"visit_date"`
	VisitType    string      `json:"visit_type"`
	Diagnosis    string      `json:"diagnosis"`
	Prescription string      `json:"prescription"`
	Notes        string      `json:"notes"`
}

func (v VisitCreate) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.PatientID, validation.Required, validation.Min(int64(1))),
		validation.Field(&v.VisitDate, dateRequired),
		validation.Field(&v.VisitType, validation.In("OPD", "IPD")),
	)
}

// VisitUpdate is the payload for PUT /visits/{id}; nil fields are left
// untouched.
type VisitUpdate struct {
	VisitDate    *models.Date `json:"visit_date"`
	VisitType    *string      `json:"visit_type"`
	Diagnosis    *string      `json:"diagnosis"`
	Prescription *string      `json:"prescription"`
	Notes        *string      `json:"notes"`
}

func (v VisitUpdate) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.VisitDate, validation.NilOrNotEmpty),
	)
}
