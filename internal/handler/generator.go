package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for password generation and scoring.
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
	if !decodeBody(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if service.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		logging.L.Error("generate failed", clientField(r), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	logging.L.Info("passwords generated",
		clientField(r),
		zap.String("complexity", resp.Complexity),
		zap.Int("length", resp.Length),
		zap.Int("count", len(resp.Passwords)),
		zap.Bool("hashed", req.Hash),
		zap.Bool("advisory", resp.Advisory != ""),
	)
	writeJSON(w, http.StatusOK, resp)
}

// HandleScore handles POST /api/v1/score requests.
func (h *GeneratorHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp := h.service.Score(req)
	logging.L.Info("password scored", clientField(r), zap.Int("score", resp.Score))
	writeJSON(w, http.StatusOK, resp)
}

// HandleTiers handles GET /api/v1/tiers requests.
func (h *GeneratorHandler) HandleTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Tiers())
}

// decodeBody reads a JSON body into v and writes the error response itself
// when it fails. An empty body is accepted only when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return true
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("request body is required"))
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
	case allowEmpty && errors.Is(err, io.EOF):
		return true
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	}
	return false
}

// clientField names the API client for log lines. Requests are anonymous
// when the API runs without a secret.
func clientField(r *http.Request) zap.Field {
	client, ok := middleware.ClientFromContext(r.Context())
	if !ok {
		client = "anonymous"
	}
	return zap.String("client", client)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.L.Debug("writing response", zap.Error(err))
	}
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
