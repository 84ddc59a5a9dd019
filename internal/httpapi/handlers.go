package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulsemed/worklist/internal/domain"
	"github.com/pulsemed/worklist/internal/usecase"
)

// taskView is the JSON shape returned for a task.
type taskView struct {
	ID              string   `json:"id"`
	ReferenceCode   string   `json:"referenceCode"`
	PatientRef      string   `json:"patientRef"`
	ClinicalContext string   `json:"clinicalContext,omitempty"`
	Urgency         string   `json:"urgency"`
	Status          string   `json:"status"`
	LeaseHolder     string   `json:"leaseHolder,omitempty"`
	LeaseDeadline   string   `json:"leaseDeadline,omitempty"`
	ExtensionCount  int      `json:"extensionCount"`
	Draft           string   `json:"draft,omitempty"`
	Result          string   `json:"result,omitempty"`
	CompletedBy     string   `json:"completedBy,omitempty"`
	SubmittedAt     string   `json:"submittedAt"`
	CompletedAt     string   `json:"completedAt,omitempty"`
	Visibility      []string `json:"visibility,omitempty"`
}

func toView(t *domain.Task) taskView {
	v := taskView{
		ID:              t.ID,
		ReferenceCode:   t.ReferenceCode,
		PatientRef:      t.PatientRef,
		ClinicalContext: t.ClinicalContext,
		Urgency:         string(t.Urgency),
		Status:          string(t.Status),
		LeaseHolder:     t.LeaseHolder,
		ExtensionCount:  t.ExtensionCount,
		Draft:           t.Draft,
		Result:          t.Result,
		CompletedBy:     t.CompletedBy,
		SubmittedAt:     t.SubmittedAt.Format(timeFormat),
		Visibility:      t.Visibility,
	}
	if !t.LeaseDeadline.IsZero() {
		v.LeaseDeadline = t.LeaseDeadline.Format(timeFormat)
	}
	if !t.CompletedAt.IsZero() {
		v.CompletedAt = t.CompletedAt.Format(timeFormat)
	}
	return v
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

func toViews(tasks []*domain.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, toView(t))
	}
	return views
}

// viewer extracts the caller identity header.
func viewer(r *http.Request) string {
	return r.Header.Get("X-Viewer")
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PatientRef      string   `json:"patientRef"`
		ClinicalContext string   `json:"clinicalContext"`
		Urgency         string   `json:"urgency"`
		Visibility      []string `json:"visibility"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.container.SubmitTaskUseCase().Execute(r.Context(), usecase.SubmitTaskInput{
		PatientRef:      body.PatientRef,
		ClinicalContext: body.ClinicalContext,
		Urgency:         body.Urgency,
		Visibility:      body.Visibility,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toView(out.Task))
}

func (s *Server) handleListAvailable(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.ListAvailableUseCase().Execute(r.Context(), usecase.ListAvailableInput{
		Viewer: viewer(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toViews(out.Tasks))
}

func (s *Server) handleListMine(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.ListMineUseCase().Execute(r.Context(), usecase.ListMineInput{
		Viewer: viewer(r),
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toViews(out.Tasks))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.GetTaskUseCase().Execute(r.Context(), usecase.GetTaskInput{
		TaskID: r.PathValue("id"),
		Viewer: viewer(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(out.Task))
}

func (s *Server) handleAcquire(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.AcquireTaskUseCase().Execute(r.Context(), usecase.AcquireTaskInput{
		TaskID: r.PathValue("id"),
		Viewer: viewer(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(out.Task))
}

func (s *Server) handleExtend(w http.ResponseWriter, r *http.Request) {
	out, err := s.container.ExtendLeaseUseCase().Execute(r.Context(), usecase.ExtendLeaseInput{
		TaskID: r.PathValue("id"),
		Viewer: viewer(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(out.Task))
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Draft string `json:"draft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.container.SaveDraftUseCase().Execute(r.Context(), usecase.SaveDraftInput{
		TaskID: r.PathValue("id"),
		Viewer: viewer(r),
		Draft:  body.Draft,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(out.Task))
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Result   string `json:"result"`
		Abnormal bool   `json:"abnormal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := s.container.CompleteTaskUseCase().Execute(r.Context(), usecase.CompleteTaskInput{
		TaskID:   r.PathValue("id"),
		Viewer:   viewer(r),
		Result:   body.Result,
		Abnormal: body.Abnormal,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(out.Task))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the engine's error taxonomy to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotVisible):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAlreadyLeased), errors.Is(err, domain.ErrStatusConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotLeased), errors.Is(err, domain.ErrNotHolder):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyViewer):
		writeError(w, http.StatusUnauthorized, "missing X-Viewer header")
	case errors.Is(err, domain.ErrEmptyPatientRef),
		errors.Is(err, domain.ErrEmptyResult),
		errors.Is(err, domain.ErrInvalidUrgency),
		errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
