package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleBatchGenerate handles POST /batch-generate requests.
func (h *GeneratorHandler) HandleBatchGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.BatchGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.BatchGenerate(req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleTiers handles GET /api/v1/complexities requests.
func (h *GeneratorHandler) HandleTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Tiers())
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
// It writes the error response itself and reports whether to continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		case errors.Is(err, io.EOF):
			return true
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}

// writeGenerationError reports every generator failure as a 400. Only
// unexpected failures are logged.
func writeGenerationError(w http.ResponseWriter, err error) {
	if !isValidationError(err) {
		slog.Error("password generation failed", "error", err)
	}
	writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrInsufficientLength) ||
		errors.Is(err, crypto.ErrUnknownComplexity) ||
		errors.Is(err, crypto.ErrInvalidCount) ||
		errors.Is(err, crypto.ErrCountTooLarge)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Success: false, Error: msg}
}
