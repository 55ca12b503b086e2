package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/clinicbase/medrec-be/internal/http/respond"
	"github.com/clinicbase/medrec-be/internal/middleware"
	"github.com/clinicbase/medrec-be/internal/models/dto"
	"github.com/clinicbase/medrec-be/internal/storage"
)

// PatientsHandler owns patient-profile CRUD. Any authenticated user may
// manage profiles; there is no role restriction on this entity set.
type PatientsHandler struct {
	store storage.PatientStore
}

// NewPatientsHandler constructs the handler.
func NewPatientsHandler(store storage.PatientStore) *PatientsHandler {
	return &PatientsHandler{store: store}
}

// Register attaches patient routes to the mux.
func (h *PatientsHandler) Register(mux *http.ServeMux, authn *middleware.Authenticator) {
	mux.HandleFunc("GET /patients", authn.RequireUser(h.handleList))
	mux.HandleFunc("POST /patients", authn.RequireUser(h.handleCreate))
	mux.HandleFunc("GET /patients/{id}", authn.RequireUser(h.handleGet))
	mux.HandleFunc("PUT /patients/{id}", authn.RequireUser(h.handleUpdate))
	mux.HandleFunc("DELETE /patients/{id}", authn.RequireUser(h.handleDelete))
}

func (h *PatientsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)
	patients, err := h.store.ListPatients(r.Context(), skip, limit)
	if err != nil {
		log.Printf("list patients: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list patients")
		return
	}
	respond.JSON(w, http.StatusOK, patients)
}

func (h *PatientsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	patient, err := h.store.GetPatient(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "patient not found")
			return
		}
		log.Printf("get patient %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch patient")
		return
	}
	respond.JSON(w, http.StatusOK, patient)
}

func (h *PatientsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientCreate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	creator := middleware.UserFrom(r.Context())
	patient, err := h.store.CreatePatient(r.Context(), req, creator.ID)
	if err != nil {
		log.Printf("create patient: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create patient")
		return
	}
	respond.JSON(w, http.StatusCreated, patient)
}

func (h *PatientsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.PatientUpdate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	patient, err := h.store.UpdatePatient(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "patient not found")
			return
		}
		log.Printf("update patient %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update patient")
		return
	}
	respond.JSON(w, http.StatusOK, patient)
}

func (h *PatientsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeletePatient(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "patient not found")
			return
		}
		log.Printf("delete patient %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete patient")
		return
	}
	respond.Message(w, http.StatusOK, "Patient deleted successfully")
}
