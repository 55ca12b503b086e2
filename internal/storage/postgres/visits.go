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

const visitColumns = `id, patient_id, visit_date, visit_type, diagnosis, prescription,
	notes, created_by, created_at, updated_at`

// ListVisits returns a page of visits.
func (s *Store) ListVisits(ctx context.Context, skip, limit int) ([]models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits ORDER BY id OFFSET $1 LIMIT $2;`
	rows, err := s.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	return collectVisits(rows)
}

// GetVisit fetches a visit by id.
func (s *Store) GetVisit(ctx context.Context, id int64) (models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits WHERE id = $1;`
	return scanVisit(s.pool.QueryRow(ctx, query, id))
}

// ListPatientVisits returns every visit for the given patient profile.
func (s *Store) ListPatientVisits(ctx context.Context, patientID int64) ([]models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits WHERE patient_id = $1 ORDER BY id;`
	rows, err := s.pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient visits: %w", err)
	}
	defer rows.Close()
	return collectVisits(rows)
}

// CreateVisit inserts a visit attributed to the caller.
func (s *Store) CreateVisit(ctx context.Context, in dto.VisitCreate, creatorID int64) (models.Visit, error) {
	const query = `
	INSERT INTO visits (patient_id, visit_date, visit_type, diagnosis, prescription, notes, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + visitColumns + `;`

	row := s.pool.QueryRow(ctx, query,
		in.PatientID, in.VisitDate.Time, in.VisitType, in.Diagnosis, in.Prescription, in.Notes, creatorID,
	)
	return scanVisit(row)
}

// UpdateVisit applies only the supplied fields and stamps updated_at.
func (s *Store) UpdateVisit(ctx context.Context, id int64, in dto.VisitUpdate) (models.Visit, error) {
	set := []string{"updated_at = NOW()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if in.VisitDate != nil {
		add("visit_date", in.VisitDate.Time)
	}
	if in.VisitType != nil {
		add("visit_type", *in.VisitType)
	}
	if in.Diagnosis != nil {
		add("diagnosis", *in.Diagnosis)
	}
	if in.Prescription != nil {
		add("prescription", *in.Prescription)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE visits SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(set, ", "), len(args), visitColumns,
	)
	return scanVisit(s.pool.QueryRow(ctx, query, args...))
}

// DeleteVisit removes a visit.
func (s *Store) DeleteVisit(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM visits WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func collectVisits(rows pgx.Rows) ([]models.Visit, error) {
	visits := []models.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func scanVisit(row pgx.Row) (models.Visit, error) {
	var v models.Visit
	var visitDate time.Time
	err := row.Scan(
		&v.ID, &v.PatientID, &visitDate, &v.VisitType, &v.Diagnosis,
		&v.Prescription, &v.Notes, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Visit{}, storage.ErrNotFound
		}
		return models.Visit{}, err
	}
	v.VisitDate = models.NewDate(visitDate)
	return v, nil
}
