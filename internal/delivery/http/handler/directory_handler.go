package handler

import (
	"errors"
	"net/http"

	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUsecase: directoryUsecase}
}

func (h *DirectoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Directory status retrieved successfully", h.directoryUsecase.Status())
}

// Reload refetches the full doctor set, replacing the current one.
func (h *DirectoryHandler) Reload(w http.ResponseWriter, r *http.Request) {
	err := h.directoryUsecase.Reload(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDirectoryLoading):
			response.Conflict(w, "Doctor directory is already loading")
		case errors.Is(err, usecase.ErrDirectoryUnavailable):
			response.ServiceUnavailable(w, "Failed to reload doctors", err.Error())
		default:
			response.InternalServerError(w, "Failed to reload doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Directory reloaded successfully", h.directoryUsecase.Status())
}
