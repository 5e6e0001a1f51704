package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// StrengthHandler handles HTTP requests for password strength evaluation.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleEvaluate handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Evaluate(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
