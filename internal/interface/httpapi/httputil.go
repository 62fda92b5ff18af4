package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/YoshitsuguKoike/propbrief/internal/app"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/submission"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
	Wizard any               `json:"wizard,omitempty"`
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.GetLogger().Warn("writeJSON encode error: %v", err)
	}
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// decodeJSON decodes the request body into v. Unknown keys are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseUUID extracts and validates a UUID path parameter.
func parseUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid UUID: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// errorToHTTP maps domain errors to HTTP responses. snapshot, when not nil,
// is attached so clients can render inline errors without a second call.
func errorToHTTP(w http.ResponseWriter, err error, snapshot any) {
	var werr wizard.WizardError
	if errors.As(err, &werr) {
		body := errorBody{Error: werr.Message, Code: werr.Code, Wizard: snapshot}
		if len(werr.Fields) > 0 {
			body.Fields = make(map[string]string, len(werr.Fields))
			for id, msg := range werr.Fields {
				body.Fields[string(id)] = msg
			}
		}
		writeJSON(w, wizardStatus(werr.Code), body)
		return
	}

	var subErr *submission.SubmissionError
	if errors.As(err, &subErr) {
		writeJSON(w, http.StatusBadGateway, errorBody{Error: subErr.Error(), Code: "SUBMISSION_FAILED", Wizard: snapshot})
		return
	}

	switch {
	case errors.Is(err, payload.ErrIncomplete):
		writeError(w, http.StatusConflict, "PAYLOAD_INCOMPLETE", err.Error())
	case errors.Is(err, disclosure.ErrUnknownTransaction), errors.Is(err, disclosure.ErrUnknownRole):
		writeError(w, http.StatusConflict, "DISCLOSURE_UNAVAILABLE", err.Error())
	default:
		app.GetLogger().Error("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func wizardStatus(code string) int {
	switch code {
	case wizard.CodeStepInvalid:
		return http.StatusUnprocessableEntity
	case wizard.CodeJumpRejected, wizard.CodeReadOnly, wizard.CodeNotReady:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
