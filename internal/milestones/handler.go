package milestones

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=milestones_test

type milestonesLister interface {
	ListByUser(ctx context.Context, userID, limit int) ([]Milestone, error)
}

type Handler struct {
	repo milestonesLister
}

func NewHandler(repo milestonesLister) *Handler {
	return &Handler{
		repo: repo,
	}
}

// ListLimit reads the optional limit query param.
func ListLimit(r *http.Request) (int, bool) {
	limitParam := r.URL.Query().Get("limit")
	if limitParam == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 {
		return 0, false
	}
	return min(limit, maxListLimit), true
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit, ok := ListLimit(r)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	ms, err := h.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		log.Errorf("list milestones for user %d: %s", userID, err)
		http.Error(w, "list milestones failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ms, http.StatusOK)
}
