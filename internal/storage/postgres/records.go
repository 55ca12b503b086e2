package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

const recordColumns = `id, patient_id, created_by, patient_name, patient_age, patient_gender,
	patient_contact, diagnosis, symptoms, treatment_plan, medications, allergies,
	vital_signs, lab_results, notes, is_confidential, record_date, last_updated`

// ListRecords returns a page of medical records, optionally narrowed by a
// substring search and a patient id.
func (s *Store) ListRecords(ctx context.Context, filter storage.RecordFilter) ([]models.MedicalRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM medical_records`
	var conds []string
	var args []any

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(patient_name ILIKE $%d OR diagnosis ILIKE $%d OR symptoms ILIKE $%d)", n, n, n))
	}
	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conds = append(conds, fmt.Sprintf("patient_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Skip)
	query += fmt.Sprintf(" ORDER BY id OFFSET $%d", len(args))
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d;", len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// GetRecord fetches a record by id.
func (s *Store) GetRecord(ctx context.Context, id int64) (models.MedicalRecord, error) {
	const query = `SELECT ` + recordColumns + ` FROM medical_records WHERE id = $1;`
	return scanRecord(s.pool.QueryRow(ctx, query, id))
}

// ListPatientRecords returns every record referencing the given patient user.
func (s *Store) ListPatientRecords(ctx context.Context, patientID int64) ([]models.MedicalRecord, error) {
	const query = `SELECT ` + recordColumns + ` FROM medical_records WHERE patient_id = $1 ORDER BY id;`
	rows, err := s.pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// CreateRecord inserts a record. The creator id comes from the authenticated
// caller, never from the payload.
func (s *Store) CreateRecord(ctx context.Context, in dto.RecordCreate, creatorID int64) (models.MedicalRecord, error) {
	const query = `
	INSERT INTO medical_records (
		patient_id, created_by, patient_name, patient_age, patient_gender,
		patient_contact, diagnosis, symptoms, treatment_plan, medications,
		allergies, vital_signs, lab_results, notes, is_confidential
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + recordColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		in.PatientID, creatorID, in.PatientName, in.PatientAge, in.PatientGender,
		in.PatientContact, in.Diagnosis, in.Symptoms, in.TreatmentPlan, in.Medications,
		in.Allergies, in.VitalSigns, in.LabResults, in.Notes, in.IsConfidential,
	)
	return scanRecord(row)
}

// UpdateRecord applies only the supplied fields; last_updated is refreshed on
// every call, including an empty update.
func (s *Store) UpdateRecord(ctx context.Context, id int64, in dto.RecordUpdate) (models.MedicalRecord, error) {
	set := []string{"last_updated = NOW()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if in.Diagnosis != nil {
		add("diagnosis", *in.Diagnosis)
	}
	if in.Symptoms != nil {
		add("symptoms", *in.Symptoms)
	}
	if in.TreatmentPlan != nil {
		add("treatment_plan", *in.TreatmentPlan)
	}
	if in.Medications != nil {
		add("medications", *in.Medications)
	}
	if in.Allergies != nil {
		add("allergies", *in.Allergies)
	}
	if in.VitalSigns != nil {
		add("vital_signs", *in.VitalSigns)
	}
	if in.LabResults != nil {
		add("lab_results", *in.LabResults)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if in.IsConfidential != nil {
		add("is_confidential", *in.IsConfidential)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE medical_records SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(set, ", "), len(args), recordColumns,
	)
	return scanRecord(s.pool.QueryRow(ctx, query, args...))
}

// DeleteRecord removes a record; a missing id yields storage.ErrNotFound on
// this and every subsequent call.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM medical_records WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func collectRecords(rows pgx.Rows) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func scanRecord(row pgx.Row) (models.MedicalRecord, error) {
	var rec models.MedicalRecord
	err := row.Scan(
		&rec.ID, &rec.PatientID, &rec.CreatedBy, &rec.PatientName, &rec.PatientAge,
		&rec.PatientGender, &rec.PatientContact, &rec.Diagnosis, &rec.Symptoms,
		&rec.TreatmentPlan, &rec.Medications, &rec.Allergies, &rec.VitalSigns,
		&rec.LabResults, &rec.Notes, &rec.IsConfidential, &rec.RecordDate, &rec.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MedicalRecord{}, storage.ErrNotFound
		}
		return models.MedicalRecord{}, err
	}
	return rec, nil
}
