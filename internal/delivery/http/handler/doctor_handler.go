package handler

import (
	"errors"
	"net/http"
	"strconv"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

const emptyResultMessage = "No doctors match the selected filters. Try removing a specialty, switching the consultation mode or shortening the search."

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	req := converter.QueryToRequest(r.URL.Query())
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.directoryUsecase.Search(r.Context(), converter.RequestToCriteria(req))
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	if result.Total == 0 {
		response.Success(w, http.StatusOK, emptyResultMessage, result)
		return
	}
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.SuggestionQueryRequest{Query: query.Get("q")}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.ValidationError(w, map[string]string{"limit": "limit must be a number"})
			return
		}
		req.Limit = limit
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), req.Query, req.Limit)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	req := &dto.SpecialtyQueryRequest{Query: r.URL.Query().Get("q")}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialties, err := h.directoryUsecase.Specialties(r.Context(), req.Query)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func writeDirectoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDirectoryLoading):
		response.ServiceUnavailable(w, "Doctor directory is loading", nil)
	case errors.Is(err, usecase.ErrDirectoryUnavailable):
		response.ServiceUnavailable(w, "Error loading doctors. POST /api/v1/directory/reload to try again", err.Error())
	default:
		response.InternalServerError(w, "Failed to query doctors")
	}
}
