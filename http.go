package formkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

// datastarAcceptHeader marks requests expecting server-sent events.
const datastarAcceptHeader = "text/event-stream"

// validationResponse is the JSON shape returned by the validate endpoints.
type validationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Handler exposes the form over HTTP for reactive frontends:
//
//	POST {prefix}/validate          validate every field
//	POST {prefix}/validate/{field}  validate one field (blur / input events)
//
// Both endpoints read form-encoded values from the request body, update the
// form, and report per-field error state. Plain requests get a JSON body,
// 422 when invalid; datastar requests get the same state patched into the
// "valid" and "errors" signals over SSE.
func (f *Form) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/validate", f.handleValidate)
	r.Post("/validate/{field}", f.handleValidateField)
	return r
}

func (f *Form) handleValidate(w http.ResponseWriter, r *http.Request) {
	values, err := RequestValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for field, value := range values {
		if err := f.SetValue(field, value); err != nil {
			f.configError(w, r, err)
			return
		}
	}

	errs, err := f.Validate()
	if err != nil {
		f.configError(w, r, err)
		return
	}
	f.respond(w, r, errs)
}

func (f *Form) handleValidateField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	values, err := RequestValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if value, ok := values[field]; ok {
		if err := f.SetValue(field, value); err != nil {
			f.configError(w, r, err)
			return
		}
	}

	failure, err := f.ValidateField(field)
	if err != nil {
		f.configError(w, r, err)
		return
	}

	errs := NewFieldErrors()
	if failure != nil {
		errs.Set(field, failure.Message)
	}
	f.respond(w, r, errs)
}

func (f *Form) respond(w http.ResponseWriter, r *http.Request, errs FieldErrors) {
	resp := validationResponse{Valid: errs.IsEmpty(), Errors: errs.Messages()}

	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		signals, err := json.Marshal(map[string]any{
			"valid":  resp.Valid,
			"errors": resp.Errors,
		})
		if err != nil {
			f.logger.Error("marshal signals", "form_id", f.id, "error", err)
			return
		}
		if err := sse.PatchSignals(signals); err != nil {
			f.logger.Error("patch signals", "form_id", f.id, "error", err)
		}
		return
	}

	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

// configError reports rule misconfiguration. These are developer errors, not
// invalid user input, so they surface as 500s.
func (f *Form) configError(w http.ResponseWriter, r *http.Request, err error) {
	f.logger.Error("validation misconfigured", "form_id", f.id, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// isDataStar checks if the request comes from a datastar frontend: it either
// accepts SSE or carries the datastar signals query parameter.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), datastarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has("datastar")
}
