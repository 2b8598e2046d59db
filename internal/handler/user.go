package handler

import (
	"log/slog"
	"net/http"

	"filmgraph/internal/httputil"
	"filmgraph/internal/model"
	"filmgraph/internal/service"
)

type UserHandler struct {
	users   *service.UserService
	friends *service.FriendshipService
	log     *slog.Logger
}

func NewUserHandler(users *service.UserService, friends *service.FriendshipService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		users:   users,
		friends: friends,
		log:     log,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.users.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.users.Update(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}
	friendID, ok := idParam(r, "friendId")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid friend ID")
		return
	}

	if err := h.friends.AddFriend(r.Context(), id, friendID); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Friend added",
	})
}

func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}
	friendID, ok := idParam(r, "friendId")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid friend ID")
		return
	}

	if err := h.friends.RemoveFriend(r.Context(), id, friendID); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Friend removed",
	})
}

func (h *UserHandler) Friends(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	friends, err := h.friends.Friends(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, friends)
}

func (h *UserHandler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}
	otherID, ok := idParam(r, "otherId")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	common, err := h.friends.CommonFriends(r.Context(), id, otherID)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, common)
}
