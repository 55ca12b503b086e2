package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/clinicbase/medrec-be/internal/models"
)

// PatientCreate is the payload for POST /patients.
type PatientCreate struct {
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	DateOfBirth      models.Date `json:"date_of_birth"`
	Gender           string      `json:"gender"`
	Address          string      `json:"address"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email"`
	EmergencyContact string      `json:"emergency_contact"`
	InsuranceInfo    string      `json:"insurance_info"`
	MedicalHistory   string      `json:"medical_history"`
}

func (p PatientCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.DateOfBirth, dateRequired),
		validation.Field(&p.Gender, validation.Required, validation.Length(1, 20)),
		validation.Field(&p.Email, is.Email),
	)
}

// PatientUpdate is the payload for PUT /patients/{id}; nil fields are left
// untouched.
type PatientUpdate struct {
	FirstName        *string      `json:"first_name"`
	LastName         *string      `json:"last_name"`
	DateOfBirth      *models.Date `json:"date_of_birth"`
	Gender           *string      `json:"gender"`
	Address          *string      `json:"address"`
	Phone            *string      `json:"phone"`
	Email            *string      `json:"email"`
	EmergencyContact *string      `json:"emergency_contact"`
	InsuranceInfo    *string      `json:"insurance_info"`
	MedicalHistory   *string      `json:"medical_history"`
}

func (p PatientUpdate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.NilOrNotEmpty),
		validation.Field(&p.LastName, validation.NilOrNotEmpty),
	)
}
