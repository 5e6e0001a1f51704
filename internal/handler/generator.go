package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// EmptySelectionMessage is shown when a request enables no character class.
const EmptySelectionMessage = "Please select at least one option for the password."

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, generator.ErrEmptySelection) {
			writeJSON(w, http.StatusBadRequest, errorResponse(EmptySelectionMessage))
			return
		}
		slog.Error("generating password", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
