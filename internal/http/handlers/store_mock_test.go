package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

var _ storage.Store = (*memStore)(nil)

// memStore is an in-memory storage.Store used to exercise handlers without a
// database. It mirrors the postgres store's semantics: sentinel errors for
// missing rows and uniqueness conflicts, partial updates that always refresh
// the mutation timestamp.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]models.User
	records  map[int64]models.MedicalRecord
	patients map[int64]models.Patient
	visits   map[int64]models.Visit
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]models.User{},
		records:  map[int64]models.MedicalRecord{},
		patients: map[int64]models.Patient{},
		visits:   map[int64]models.Visit{},
	}
}

func (m *memStore) nextSerial() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = m.nextSerial()
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) GetUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) ListRecords(_ context.Context, filter storage.RecordFilter) ([]models.MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []models.MedicalRecord{}
	for _, rec := range m.records {
		if filter.PatientID != nil && rec.PatientID != *filter.PatientID {
			continue
		}
		if filter.Search != "" && !recordMatches(rec, filter.Search) {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	if filter.Skip >= len(matched) {
		return []models.MedicalRecord{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func recordMatches(rec models.MedicalRecord, search string) bool {
	needle := strings.ToLower(search)
	for _, hay := range []string{rec.PatientName, rec.Diagnosis, rec.Symptoms} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func (m *memStore) GetRecord(_ context.Context, id int64) (models.MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return models.MedicalRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (m *memStore) CreateRecord(_ context.Context, in dto.RecordCreate, creatorID int64) (models.MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	rec := models.MedicalRecord{
		ID:             m.nextSerial(),
		PatientID:      in.PatientID,
		CreatedBy:      creatorID,
		PatientName:    in.PatientName,
		PatientAge:     in.PatientAge,
		PatientGender:  in.PatientGender,
		PatientContact: in.PatientContact,
		Diagnosis:      in.Diagnosis,
		Symptoms:       in.Symptoms,
		TreatmentPlan:  in.TreatmentPlan,
		Medications:    in.Medications,
		Allergies:      in.Allergies,
		VitalSigns:     in.VitalSigns,
		LabResults:     in.LabResults,
		Notes:          in.Notes,
		IsConfidential: in.IsConfidential,
		RecordDate:     now,
		LastUpdated:    now,
	}
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *memStore) UpdateRecord(_ context.Context, id int64, in dto.RecordUpdate) (models.MedicalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return models.MedicalRecord{}, storage.ErrNotFound
	}
	applyString(&rec.Diagnosis, in.Diagnosis)
	applyString(&rec.Symptoms, in.Symptoms)
	applyString(&rec.TreatmentPlan, in.TreatmentPlan)
	applyString(&rec.Medications, in.Medications)
	applyString(&rec.Allergies, in.Allergies)
	applyString(&rec.VitalSigns, in.VitalSigns)
	applyString(&rec.LabResults, in.LabResults)
	applyString(&rec.Notes, in.Notes)
	if in.IsConfidential != nil {
		rec.IsConfidential = *in.IsConfidential
	}
	rec.LastUpdated = time.Now()
	m.records[id] = rec
	return rec, nil
}

func (m *memStore) DeleteRecord(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memStore) ListPatientRecords(_ context.Context, patientID int64) ([]models.MedicalRecord, error) {
	return m.ListRecords(context.Background(), storage.RecordFilter{Limit: 0, PatientID: &patientID})
}

func (m *memStore) ListPatients(_ context.Context, skip, limit int) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := []models.Patient{}
	for _, p := range m.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if skip >= len(all) {
		return []models.Patient{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) GetPatient(_ context.Context, id int64) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patients[id]
	if !ok {
		return models.Patient{}, storage.ErrNotFound
	}
	return p, nil
}

func (m *memStore) CreatePatient(_ context.Context, in dto.PatientCreate, creatorID int64) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Patient{
		ID:               m.nextSerial(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		DateOfBirth:      in.DateOfBirth,
		Gender:           in.Gender,
		Address:          in.Address,
		Phone:            in.Phone,
		Email:            in.Email,
		EmergencyContact: in.EmergencyContact,
		InsuranceInfo:    in.InsuranceInfo,
		MedicalHistory:   in.MedicalHistory,
		CreatedBy:        creatorID,
		CreatedAt:        time.Now(),
	}
	m.patients[p.ID] = p
	return p, nil
}

func (m *memStore) UpdatePatient(_ context.Context, id int64, in dto.PatientUpdate) (models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patients[id]
	if !ok {
		return models.Patient{}, storage.ErrNotFound
	}
	applyString(&p.FirstName, in.FirstName)
	applyString(&p.LastName, in.LastName)
	if in.DateOfBirth != nil {
		p.DateOfBirth = *in.DateOfBirth
	}
	applyString(&p.Gender, in.Gender)
	applyString(&p.Address, in.Address)
	applyString(&p.Phone, in.Phone)
	applyString(&p.Email, in.Email)
	applyString(&p.EmergencyContact, in.EmergencyContact)
	applyString(&p.InsuranceInfo, in.InsuranceInfo)
	applyString(&p.MedicalHistory, in.MedicalHistory)
	now := time.Now()
	p.UpdatedAt = &now
	m.patients[id] = p
	return p, nil
}

func (m *memStore) DeletePatient(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.patients[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *memStore) ListVisits(_ context.Context, skip, limit int) ([]models.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := []models.Visit{}
	for _, v := range m.visits {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if skip >= len(all) {
		return []models.Visit{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) GetVisit(_ context.Context, id int64) (models.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.visits[id]
	if !ok {
		return models.Visit{}, storage.ErrNotFound
	}
	return v, nil
}

func (m *memStore) CreateVisit(_ context.Context, in dto.VisitCreate, creatorID int64) (models.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := models.Visit{
		ID:           m.nextSerial(),
		PatientID:    in.PatientID,
		VisitDate:    in.VisitDate,
		VisitType:    in.VisitType,
		Diagnosis:    in.Diagnosis,
		Prescription: in.Prescription,
		Notes:        in.Notes,
		CreatedBy:    creatorID,
		CreatedAt:    time.Now(),
	}
	m.visits[v.ID] = v
	return v, nil
}

func (m *memStore) UpdateVisit(_ context.Context, id int64, in dto.VisitUpdate) (models.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.visits[id]
	if !ok {
		return models.Visit{}, storage.ErrNotFound
	}
	if in.VisitDate != nil {
		v.VisitDate = *in.VisitDate
	}
	applyString(&v.VisitType, in.VisitType)
	applyString(&v.Diagnosis, in.Diagnosis)
	applyString(&v.Prescription, in.Prescription)
	applyString(&v.Notes, in.Notes)
	now := time.Now()
	v.UpdatedAt = &now
	m.visits[id] = v
	return v, nil
}

func (m *memStore) DeleteVisit(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.visits[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.visits, id)
	return nil
}

func (m *memStore) ListPatientVisits(_ context.Context, patientID int64) ([]models.Visit, error) {
	all, _ := m.ListVisits(context.Background(), 0, 0)
	matched := []models.Visit{}
	for _, v := range all {
		if v.PatientID == patientID {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
