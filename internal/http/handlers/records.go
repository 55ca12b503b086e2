package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/clinicbase/medrec-be/internal/http/respond"
	"github.com/clinicbase/medrec-be/internal/middleware"
	"github.com/clinicbase/medrec-be/internal/models"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

// RecordsHandler owns medical-record CRUD. Reads are open to any
// authenticated user except that patient-role callers only see their own
// records; creates and updates need the doctor role, deletes admin.
type RecordsHandler struct {
	store storage.RecordStore
}

// NewRecordsHandler constructs the handler.
func NewRecordsHandler(store storage.RecordStore) *RecordsHandler {
	return &RecordsHandler{store: store}
}

// Register attaches record routes to the mux.
func (h *RecordsHandler) Register(mux *http.ServeMux, authn *middleware.Authenticator) {
	mux.HandleFunc("GET /records", authn.RequireUser(h.handleList))
	mux.HandleFunc("POST /records", authn.RequireRole(models.RoleDoctor, h.handleCreate))
	mux.HandleFunc("GET /records/{id}", authn.RequireUser(h.handleGet))
	mux.HandleFunc("PUT /records/{id}", authn.RequireRole(models.RoleDoctor, h.handleUpdate))
	mux.HandleFunc("DELETE /records/{id}", authn.RequireRole(models.RoleAdmin, h.handleDelete))
	mux.HandleFunc("GET /patients/{id}/records", authn.RequireUser(h.handlePatientRecords))
}

func (h *RecordsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)
	filter := storage.RecordFilter{
		Skip:   skip,
		Limit:  limit,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	// Patient-role callers are confined to records about themselves.
	user := middleware.UserFrom(r.Context())
	if user.Role == models.RolePatient {
		own := user.ID
		filter.PatientID = &own
	}

	records, err := h.store.ListRecords(r.Context(), filter)
	if err != nil {
		log.Printf("list records: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	respond.JSON(w, http.StatusOK, records)
}

func (h *RecordsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.store.GetRecord(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "record not found")
			return
		}
		log.Printf("get record %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch record")
		return
	}

	user := middleware.UserFrom(r.Context())
	if user.Role == models.RolePatient && record.PatientID != user.ID {
		respond.Error(w, http.StatusForbidden, "not authorized to view this record")
		return
	}
	respond.JSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordCreate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	creator := middleware.UserFrom(r.Context())
	record, err := h.store.CreateRecord(r.Context(), req, creator.ID)
	if err != nil {
		log.Printf("create record: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create record")
		return
	}
	respond.JSON(w, http.StatusCreated, record)
}

func (h *RecordsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.RecordUpdate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.store.UpdateRecord(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "record not found")
			return
		}
		log.Printf("update record %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update record")
		return
	}
	respond.JSON(w, http.StatusOK, record)
}

func (h *RecordsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeleteRecord(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "record not found")
			return
		}
		log.Printf("delete record %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	respond.Message(w, http.StatusOK, "Record deleted successfully")
}

func (h *RecordsHandler) handlePatientRecords(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// Patients may only read their own records; staff may read all.
	user := middleware.UserFrom(r.Context())
	if user.Role == models.RolePatient && user.ID != patientID {
		respond.Error(w, http.StatusForbidden, "not authorized to view these records")
		return
	}

	records, err := h.store.ListPatientRecords(r.Context(), patientID)
	if err != nil {
		log.Printf("list records for patient %d: %v", patientID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	respond.JSON(w, http.StatusOK, records)
}
