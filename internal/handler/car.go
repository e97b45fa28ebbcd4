package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/repository"
	"github.com/carstock/carstock-go/internal/service"
)

const maxImageBytes = 10 << 20 // 10MB

// CarHandler handles HTTP requests for car model operations.
type CarHandler struct {
	service *service.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(svc *service.CarService) *CarHandler {
	return &CarHandler{service: svc}
}

// HandleList handles GET /car_models/ requests.
// Query params: limit (default 10), sort_by (enum), descending (bool).
func (h *CarHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := repository.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = n
	}

	descending := false
	if v := r.URL.Query().Get("descending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid descending flag"))
			return
		}
		descending = b
	}

	cars, err := h.service.List(r.Context(), limit, r.URL.Query().Get("sort_by"), descending)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSort) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if cars == nil {
		cars = []model.CarModel{}
	}
	writeJSON(w, http.StatusOK, cars)
}

// HandleCreate handles POST /car_models/ requests.
func (h *CarHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCarModelRequest(w, r)
	if !ok {
		return
	}

	car, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, car)
}

// HandleGet handles GET /car_models/{id} requests.
func (h *CarHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	car, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondCarError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

// HandleUpdate handles PUT /car_models/{id} requests (full replace).
func (h *CarHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	req, ok := decodeCarModelRequest(w, r)
	if !ok {
		return
	}

	car, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		respondCarError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}

// HandleDelete handles DELETE /car_models/{id} requests.
func (h *CarHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondCarError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, model.AckResponse{OK: true})
}

// HandleUploadImage handles POST /car_models/{id}/image/ requests.
func (h *CarHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	h.attachImage(w, r, http.StatusCreated, "set")
}

// HandleUpdateImage handles PUT /car_models/{id}/image/ requests.
func (h *CarHandler) HandleUpdateImage(w http.ResponseWriter, r *http.Request) {
	h.attachImage(w, r, http.StatusAccepted, "updated")
}

func (h *CarHandler) attachImage(w http.ResponseWriter, r *http.Request, okStatus int, verb string) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("missing file field"))
		return
	}
	defer file.Close()

	path, err := h.service.AttachImage(r.Context(), id, file, header.Filename)
	if err != nil {
		respondCarError(w, err)
		return
	}

	writeJSON(w, okStatus, model.InfoResponse{
		Info: fmt.Sprintf("image of car model id '%d' was %s to '%s'", id, verb, path),
	})
}

// HandleDeleteImage handles DELETE /car_models/{id}/image/ requests.
// Only the database reference is cleared; the stored file stays on disk.
func (h *CarHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := carID(w, r)
	if !ok {
		return
	}

	if err := h.service.DetachImage(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusAccepted, model.InfoResponse{
		Info: fmt.Sprintf("deleted image link on car model id '%d'", id),
	})
}

func carID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid car model id"))
		return 0, false
	}
	return id, true
}

func decodeCarModelRequest(w http.ResponseWriter, r *http.Request) (model.CarModelRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CarModelRequest
	if err := decodeJSON(r, &req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return model.CarModelRequest{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.CarModelRequest{}, false
	}

	return req, true
}

func respondCarError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrCarNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
