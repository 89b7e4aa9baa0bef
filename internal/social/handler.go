package social

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/milestones"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type friendRequestInput struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
}

type nudgeInput struct {
	ToUserID int    `json:"toUserId" validate:"required,gt=0"`
	Message  string `json:"message"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleSendFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friendRequest.send")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input friendRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid friend request", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req, err := h.service.SendFriendRequest(ctx, userID, input.Username)
	if err != nil {
		writeError(w, "send friend request", err)
		return
	}
	pkg.WriteJSON(w, req, http.StatusCreated)
}

func (h *Handler) HandleListFriendRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friendRequest.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requests, err := h.service.ListIncomingRequests(ctx, userID)
	if err != nil {
		writeError(w, "list friend requests", err)
		return
	}
	pkg.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) HandleAcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friendRequest.accept")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	requestID, ok := idVar(w, r)
	if !ok {
		return
	}

	req, err := h.service.AcceptFriendRequest(ctx, userID, requestID)
	if err != nil {
		writeError(w, "accept friend request", err)
		return
	}
	pkg.WriteJSON(w, req, http.StatusOK)
}

func (h *Handler) HandleDeclineFriendRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friendRequest.decline")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	requestID, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := h.service.DeclineFriendRequest(ctx, userID, requestID); err != nil {
		writeError(w, "decline friend request", err)
		return
	}
	pkg.WriteTextResponseOK(w, "declined")
}

func (h *Handler) HandleListFriends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friends.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	friends, err := h.service.ListFriends(ctx, userID)
	if err != nil {
		writeError(w, "list friends", err)
		return
	}
	pkg.WriteJSON(w, friends, http.StatusOK)
}

func (h *Handler) HandleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.friends.remove")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	friendID, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFriend(ctx, userID, friendID); err != nil {
		writeError(w, "remove friend", err)
		return
	}
	pkg.WriteTextResponseOK(w, "removed")
}

func (h *Handler) HandleSendNudge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.nudge.send")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input nudgeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid nudge", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	nudge, err := h.service.SendNudge(ctx, userID, input.ToUserID, input.Message)
	if err != nil {
		writeError(w, "send nudge", err)
		return
	}
	pkg.WriteJSON(w, nudge, http.StatusCreated)
}

func (h *Handler) HandleListNudges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.nudge.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	limit, ok := milestones.ListLimit(r)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	nudges, err := h.service.ListNudges(ctx, userID, limit)
	if err != nil {
		writeError(w, "list nudges", err)
		return
	}
	pkg.WriteJSON(w, nudges, http.StatusOK)
}

func (h *Handler) HandleNudgeSeen(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.nudge.seen")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	nudgeID, ok := idVar(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkNudgeSeen(ctx, userID, nudgeID); err != nil {
		writeError(w, "mark nudge seen", err)
		return
	}
	pkg.WriteTextResponseOK(w, "seen")
}

func (h *Handler) HandleCelebrate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.celebrate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	milestoneID, ok := idVar(w, r)
	if !ok {
		return
	}

	celebration, err := h.service.Celebrate(ctx, userID, milestoneID)
	if err != nil {
		writeError(w, "celebrate", err)
		return
	}
	pkg.WriteJSON(w, celebration, http.StatusOK)
}

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.feed")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	limit, ok := milestones.ListLimit(r)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	items, err := h.service.Feed(ctx, userID, limit)
	if err != nil {
		writeError(w, "milestone feed", err)
		return
	}
	pkg.WriteJSON(w, items, http.StatusOK)
}

func idVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNudgeRateLimited):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.Is(err, ErrFriendRequestExists),
		errors.Is(err, ErrAlreadyFriends),
		errors.Is(err, ErrAlreadyCelebrated):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFriends),
		errors.Is(err, ErrFriendRequestsDisabled),
		errors.Is(err, ErrNudgesDisabled),
		errors.Is(err, ErrOwnMilestone):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrSelfFriendRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
