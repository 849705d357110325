package user

import (
	"net/http"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/transport"
)

// CurrentUserResponse is the session descriptor the frontend asks for before
// enabling admin-only controls.
type CurrentUserResponse struct {
	UserID          int64    `json:"userId"`
	Email           string   `json:"email"`
	Permissions     []string `json:"permissions"`
	IsAdmin         bool     `json:"isAdmin"`
	IsAuthenticated bool     `json:"isAuthenticated"`
}

type Handler struct {
	*transport.BaseHandler
}

func NewHandler(baseHandler *transport.BaseHandler) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
	}
}

// GetCurrentUser handles GET /api/v1/users/me. The auth middleware has
// already resolved the user and permissions; an unauthenticated caller
// never reaches this handler.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok || u == nil {
		h.WriteJSON(w, http.StatusOK, CurrentUserResponse{IsAuthenticated: false})
		return
	}

	permissions := u.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	h.WriteJSON(w, http.StatusOK, CurrentUserResponse{
		UserID:          u.ID,
		Email:           u.Email,
		Permissions:     permissions,
		IsAdmin:         u.IsAdmin(),
		IsAuthenticated: true,
	})
}
