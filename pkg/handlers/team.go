package handlers

import (
	"log/slog"
	"net/http"

	"projectboard/pkg/team"
)

type TeamHandler struct {
	Repo   team.Repository
	Logger *slog.Logger
}

func NewTeamHandler(repo team.Repository, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		Repo:   repo,
		Logger: logger,
	}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.Repo.List()
	if err != nil {
		h.Logger.Error("list team members", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Internal server error")
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, members)
}
