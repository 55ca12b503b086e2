package storage

import (
	"context"
	"errors"

	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
)

// ErrNotFound indicates a row does not exist. Update and delete report a
// missing id through this sentinel so handlers can translate it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence needed by auth and the guard.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecordFilter narrows ListRecords. Search matches patient name, diagnosis,
// and symptoms as case-insensitive substrings, OR-combined. A non-nil
// PatientID restricts results to that patient's records.
type RecordFilter struct {
	Skip      int
	Limit     int
	Search    string
	PatientID *int64
}

// RecordStore captures medical-record persistence.
type RecordStore interface {
	ListRecords(ctx context.Context, filter RecordFilter) ([]models.MedicalRecord, error)
	GetRecord(ctx context.Context, id int64) (models.MedicalRecord, error)
	CreateRecord(ctx context.Context, in dto.RecordCreate, creatorID int64) (models.MedicalRecord, error)
	UpdateRecord(ctx context.Context, id int64, in dto.RecordUpdate) (models.MedicalRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
	ListPatientRecords(ctx context.Context, patientID int64) ([]models.MedicalRecord, error)
}

// PatientStore captures patient-profile persistence.
type PatientStore interface {
	ListPatients(ctx context.Context, skip, limit int) ([]models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	CreatePatient(ctx context.Context, in dto.PatientCreate, creatorID int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int64, in dto.PatientUpdate) (models.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

// VisitStore captures visit persistence.
type VisitStore interface {
	ListVisits(ctx context.Context, skip, limit int) ([]models.Visit, error)
	GetVisit(ctx context.Context, id int64) (models.Visit, error)
	CreateVisit(ctx context.Context, in dto.VisitCreate, creatorID int64) (models.Visit, error)
	UpdateVisit(ctx context.Context, id int64, in dto.VisitUpdate) (models.Visit, error)
	DeleteVisit(ctx context.Context, id int64) error
	ListPatientVisits(ctx context.Context, patientID int64) ([]models.Visit, error)
}

// Store aggregates every per-entity interface; the postgres implementation
// satisfies all of them with one pool.
type Store interface {
	UserStore
	RecordStore
	PatientStore
	VisitStore
}
