package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gorilla/mux"

	"projectboard/pkg/claims"
	"projectboard/pkg/project"
)

const (
	typeError    string = "error"
	muxVarProjID string = "project_id"
)

var deadlineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type ProjectHandler struct {
	Service project.ServiceProject
	Logger  *slog.Logger
}

func NewProjectHandler(service project.ServiceProject, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		Service: service,
		Logger:  logger,
	}
}

// projectForm doubles for create and update bodies: pointers tell a
// missing field apart from a zero value.
type projectForm struct {
	Status       *string `json:"status"`
	Deadline     *string `json:"deadline"`
	Budget       *int64  `json:"budget"`
	TeamMemberID *int64  `json:"teamMemberId"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ListFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}

	if filter.Status != "" && !project.ValidStatus(filter.Status) {
		writeError(w, http.StatusBadRequest, typeError, "Invalid status")
		return
	}

	projects, err := h.Service.List(filter)
	if err != nil {
		h.Logger.Error("list projects", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form projectForm
	if ok := DecodeJSONBody(w, r, &form); !ok {
		return
	}

	if errs := validateProjectForm(form, true); len(errs) > 0 {
		WriteResp(w, h.Logger, map[string]any{
			"error":   "Validation error",
			"details": errs,
		}, http.StatusBadRequest)
		return
	}

	p, err := h.Service.Create(project.CreateInput{
		Status:       *form.Status,
		Deadline:     *form.Deadline,
		Budget:       *form.Budget,
		TeamMemberID: *form.TeamMemberID,
	})
	if err != nil {
		h.Logger.Error("create project", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, p); ok {
		h.Logger.Info("project created", "project", p.ID, "user", userIDFromContext(r))
	}
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeError, "Project not found")
			return
		}
		h.Logger.Error("get project", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, p)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var form projectForm
	if ok := DecodeJSONBody(w, r, &form); !ok {
		return
	}

	if errs := validateProjectForm(form, false); len(errs) > 0 {
		WriteResp(w, h.Logger, map[string]any{
			"error":   "Validation error",
			"details": errs,
		}, http.StatusBadRequest)
		return
	}

	in := project.UpdateInput{
		Status:       form.Status,
		Deadline:     form.Deadline,
		Budget:       form.Budget,
		TeamMemberID: form.TeamMemberID,
	}
	if in.Empty() {
		WriteResp(w, h.Logger, map[string]any{
			"error": "Validation error",
			"details": []FieldError{{
				Location: "body",
				Msg:      "at least one field must be provided",
			}},
		}, http.StatusBadRequest)
		return
	}

	p, err := h.Service.Update(id, in)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeError, "Project not found")
			return
		}
		h.Logger.Error("update project", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, p); ok {
		h.Logger.Info("project updated", "project", p.ID, "user", userIDFromContext(r))
	}
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeError, "Project not found")
			return
		}
		h.Logger.Error("delete project", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{"ok": true}, http.StatusOK); ok {
		h.Logger.Info("project deleted", "project", id, "user", userIDFromContext(r))
	}
}

func projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)

	raw, ok := vars[muxVarProjID]
	if !ok {
		writeError(w, http.StatusBadRequest, typeError, "Invalid project ID")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, typeError, "Invalid project ID")
		return 0, false
	}
	return id, true
}

func validateProjectForm(form projectForm, required bool) []FieldError {
	errs := []FieldError{}

	if form.Status != nil && !project.ValidStatus(*form.Status) {
		errs = append(errs, FieldError{
			Location: "body", Param: "status", Value: *form.Status,
			Msg: "must be one of active, on_hold, completed",
		})
	} else if required && form.Status == nil {
		errs = append(errs, FieldError{Location: "body", Param: "status", Msg: "required"})
	}

	if form.Deadline != nil && !deadlineRe.MatchString(*form.Deadline) {
		errs = append(errs, FieldError{
			Location: "body", Param: "deadline", Value: *form.Deadline,
			Msg: "must match YYYY-MM-DD",
		})
	} else if required && form.Deadline == nil {
		errs = append(errs, FieldError{Location: "body", Param: "deadline", Msg: "required"})
	}

	if form.Budget != nil && *form.Budget < 0 {
		errs = append(errs, FieldError{
			Location: "body", Param: "budget",
			Value: strconv.FormatInt(*form.Budget, 10),
			Msg:   "must be a non-negative integer",
		})
	} else if required && form.Budget == nil {
		errs = append(errs, FieldError{Location: "body", Param: "budget", Msg: "required"})
	}

	if form.TeamMemberID != nil && *form.TeamMemberID <= 0 {
		errs = append(errs, FieldError{
			Location: "body", Param: "teamMemberId",
			Value: strconv.FormatInt(*form.TeamMemberID, 10),
			Msg:   "must be a positive integer",
		})
	} else if required && form.TeamMemberID == nil {
		errs = append(errs, FieldError{Location: "body", Param: "teamMemberId", Msg: "required"})
	}

	return errs
}

func userIDFromContext(r *http.Request) string {
	c, ok := claims.FromContext(r.Context())
	if !ok {
		return ""
	}
	return c.UserID()
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{field: msg})
}
