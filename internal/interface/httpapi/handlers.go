package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/wizardflow"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

type createWizardRequest struct {
	Flow           string            `json:"flow"`
	MatchedBriefID string            `json:"matchedBriefId,omitempty"`
	Discriminators map[string]string `json:"discriminators,omitempty"`
}

type fieldInfo struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Step     string   `json:"step"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// handleHealth reports liveness and the number of open wizards.
// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"wizards": s.registry.Len(),
	})
}

// handleFields lists the field catalog of a flow.
// GET /v1/flows/{flow}/fields
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalogs[model.Flow(chi.URLParam(r, "flow"))]
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_FLOW", "unknown flow: "+chi.URLParam(r, "flow"))
		return
	}
	descs := c.Descriptors()
	out := make([]fieldInfo, 0, len(descs))
	for _, d := range descs {
		out = append(out, fieldInfo{
			ID:       string(d.ID),
			Label:    d.Label,
			Kind:     string(d.Kind),
			Step:     string(d.Step),
			Required: d.Required,
			Options:  d.Options,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateWizard opens a wizard, optionally seeded from a matching flow.
// POST /v1/wizards
func (s *Server) handleCreateWizard(w http.ResponseWriter, r *http.Request) {
	var req createWizardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	c, ok := s.catalogs[model.Flow(req.Flow)]
	if !ok {
		writeError(w, http.StatusBadRequest, "UNKNOWN_FLOW", "unknown flow: "+req.Flow)
		return
	}

	ev, err := wizardflow.DecodeEvent(c, dto.EventInput{
		Type:           wizardflow.EventSeed,
		MatchedBriefID: req.MatchedBriefID,
		Discriminators: req.Discriminators,
	})
	if err != nil {
		errorToHTTP(w, err, nil)
		return
	}

	id, sess := s.registry.Create(c, ev.(wizard.Seed))
	s.logger.Debug("wizard %s opened (%s)", id, req.Flow)
	writeJSON(w, http.StatusCreated, wizardflow.Snapshot(id.String(), sess))
}

// handleGetWizard returns the current step of a wizard.
// GET /v1/wizards/{id}
func (s *Server) handleGetWizard(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, wizardflow.Snapshot(id.String(), sess))
}

// handleCancelWizard discards a wizard.
// DELETE /v1/wizards/{id}
func (s *Server) handleCancelWizard(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if sess.Submitting() {
		errorToHTTP(w, wizard.ErrReadOnly, nil)
		return
	}
	s.registry.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleEvents applies one event, or a list of events in order. Processing
// stops at the first rejected event; the response then carries the error and
// the resulting wizard.
// POST /v1/wizards/{id}/events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var body struct {
		Events []dto.EventInput `json:"events"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if len(body.Events) == 0 {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "events must not be empty")
		return
	}

	c := sess.Catalog()
	for _, in := range body.Events {
		ev, err := wizardflow.DecodeEvent(c, in)
		if err == nil {
			err = sess.Apply(ev)
		}
		if err != nil {
			errorToHTTP(w, err, wizardflow.Snapshot(id.String(), sess))
			return
		}
	}
	writeJSON(w, http.StatusOK, wizardflow.Snapshot(id.String(), sess))
}

// handlePayload returns the final payload of a completed wizard.
// GET /v1/wizards/{id}/payload
func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	p, err := sess.FinalPayload()
	if err != nil {
		errorToHTTP(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"variant": p.Variant(),
		"payload": p,
	})
}

// handleDisclosure previews the disclosure for the current discriminators.
// GET /v1/wizards/{id}/disclosure
func (s *Server) handleDisclosure(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	text, err := s.submit.Disclosure(sess.State())
	if err != nil {
		errorToHTTP(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// handleSubmit hands the completed wizard to the submitter. The wizard is
// reset on success and kept on failure.
// POST /v1/wizards/{id}/submit
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	res, err := s.submit.Execute(r.Context(), sess)
	if err != nil {
		errorToHTTP(w, err, wizardflow.Snapshot(id.String(), sess))
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleStates lists the known states.
// GET /v1/regions/states
func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	if !s.hasRegions(w) {
		return
	}
	writeJSON(w, http.StatusOK, nonNil(s.regions.States()))
}

// handleLGAs lists the local governments of a state.
// GET /v1/regions/states/{state}/lgas
func (s *Server) handleLGAs(w http.ResponseWriter, r *http.Request) {
	if !s.hasRegions(w) {
		return
	}
	lgas := s.regions.LGAs(chi.URLParam(r, "state"))
	if lgas == nil {
		writeError(w, http.StatusNotFound, "UNKNOWN_STATE", "unknown state: "+chi.URLParam(r, "state"))
		return
	}
	writeJSON(w, http.StatusOK, lgas)
}

// handleAreas lists the known areas of a local government.
// GET /v1/regions/states/{state}/lgas/{lga}/areas
func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	if !s.hasRegions(w) {
		return
	}
	state, lga := chi.URLParam(r, "state"), chi.URLParam(r, "lga")
	if s.regions.LGAs(state) == nil {
		writeError(w, http.StatusNotFound, "UNKNOWN_STATE", "unknown state: "+state)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(s.regions.Areas(state, lga)))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (uuid.UUID, *wizard.Session, bool) {
	id, ok := parseUUID(w, r, "id")
	if !ok {
		return uuid.Nil, nil, false
	}
	sess, ok := s.registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "wizard not found: "+id.String())
		return uuid.Nil, nil, false
	}
	return id, sess, true
}

func (s *Server) hasRegions(w http.ResponseWriter) bool {
	if s.regions == nil {
		writeError(w, http.StatusNotFound, "NO_REGIONS", "region lookup is not configured")
		return false
	}
	return true
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
