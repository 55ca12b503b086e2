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

// VisitsHandler owns visit CRUD, open to any authenticated user like the
// patient-profile endpoints it hangs off.
type VisitsHandler struct {
	store storage.VisitStore
}

// NewVisitsHandler constructs the handler.
func NewVisitsHandler(store storage.VisitStore) *VisitsHandler {
	return &VisitsHandler{store: store}
}

// Register attaches visit routes to the mux.
func (h *VisitsHandler) Register(mux *http.ServeMux, authn *middleware.Authenticator) {
	mux.HandleFunc("GET /visits", authn.RequireUser(h.handleList))
	mux.HandleFunc("POST /visits", authn.RequireUser(h.handleCreate))
	mux.HandleFunc("GET /visits/{id}", authn.RequireUser(h.handleGet))
	mux.HandleFunc("PUT /visits/{id}", authn.RequireUser(h.handleUpdate))
	mux.HandleFunc("DELETE /visits/{id}", authn.RequireUser(h.handleDelete))
	mux.HandleFunc("GET /patients/{id}/visits", authn.RequireUser(h.handlePatientVisits))
}

func (h *VisitsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)
	visits, err := h.store.ListVisits(r.Context(), skip, limit)
	if err != nil {
		log.Printf("list visits: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	respond.JSON(w, http.StatusOK, visits)
}

func (h *VisitsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	visit, err := h.store.GetVisit(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "visit not found")
			return
		}
		log.Printf("get visit %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch visit")
		return
	}
	respond.JSON(w, http.StatusOK, visit)
}

func (h *VisitsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.VisitCreate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	creator := middleware.UserFrom(r.Context())
	visit, err := h.store.CreateVisit(r.Context(), req, creator.ID)
	if err != nil {
		log.Printf("create visit: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create visit")
		return
	}
	respond.JSON(w, http.StatusCreated, visit)
}

func (h *VisitsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.VisitUpdate
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	visit, err := h.store.UpdateVisit(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "visit not found")
			return
		}
		log.Printf("update visit %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update visit")
		return
	}
	respond.JSON(w, http.StatusOK, visit)
}

func (h *VisitsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeleteVisit(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "visit not found")
			return
		}
		log.Printf("delete visit %d: %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete visit")
		return
	}
	respond.Message(w, http.StatusOK, "Visit deleted successfully")
}

func (h *VisitsHandler) handlePatientVisits(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	visits, err := h.store.ListPatientVisits(r.Context(), patientID)
	if err != nil {
		log.Printf("list visits for patient %d: %v", patientID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	respond.JSON(w, http.StatusOK, visits)
}
