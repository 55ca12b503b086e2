package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

const patientColumns = `id, first_name, last_name, date_of_birth, gender, address, phone,
	email, emergency_contact, insurance_info, medical_history, created_by, created_at, updated_at`

// ListPatients returns a page of patient profiles.
func (s *Store) ListPatients(ctx context.Context, skip, limit int) ([]models.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients ORDER BY id OFFSET $1 LIMIT $2;`
	rows, err := s.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// GetPatient fetches a patient profile by id.
func (s *Store) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients WHERE id = $1;`
	return scanPatient(s.pool.QueryRow(ctx, query, id))
}

// CreatePatient inserts a patient profile attributed to the caller.
func (s *Store) CreatePatient(ctx context.Context, in dto.PatientCreate, creatorID int64) (models.Patient, error) {
	const query = `
	INSERT INTO patients (
		first_name, last_name, date_of_birth, gender, address, phone, email,
		emergency_contact, insurance_info, medical_history, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING ` + patientColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.DateOfBirth.Time, in.Gender, in.Address, in.Phone,
		in.Email, in.EmergencyContact, in.InsuranceInfo, in.MedicalHistory, creatorID,
	)
	return scanPatient(row)
}

// UpdatePatient applies only the supplied fields and stamps updated_at.
func (s *Store) UpdatePatient(ctx context.Context, id int64, in dto.PatientUpdate) (models.Patient, error) {
	set := []string{"updated_at = NOW()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if in.FirstName != nil {
		add("first_name", *in.FirstName)
	}
	if in.LastName != nil {
		add("last_name", *in.LastName)
	}
	if in.DateOfBirth != nil {
		add("date_of_birth", in.DateOfBirth.Time)
	}
	if in.Gender != nil {
		add("gender", *in.Gender)
	}
	if in.Address != nil {
		add("address", *in.Address)
	}
	if in.Phone != nil {
		add("phone", *in.Phone)
	}
	if in.Email != nil {
		add("email", *in.Email)
	}
	if in.EmergencyContact != nil {
		add("emergency_contact", *in.EmergencyContact)
	}
	if in.InsuranceInfo != nil {
		add("insurance_info", *in.InsuranceInfo)
	}
	if in.MedicalHistory != nil {
		add("medical_history", *in.MedicalHistory)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE patients SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(set, ", "), len(args), patientColumns,
	)
	return scanPatient(s.pool.QueryRow(ctx, query, args...))
}

// DeletePatient removes a patient profile.
func (s *Store) DeletePatient(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (models.Patient, error) {
	var p models.Patient
	var dob time.Time
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &dob, &p.Gender, &p.Address, &p.Phone,
		&p.Email, &p.EmergencyContact, &p.InsuranceInfo, &p.MedicalHistory,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Patient{}, storage.ErrNotFound
		}
		return models.Patient{}, err
	}
	p.DateOfBirth = models.NewDate(dob)
	return p, nil
}
