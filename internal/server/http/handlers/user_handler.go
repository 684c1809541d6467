package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tezcart/tezcart/internal/server/http/dto"
)

// UserHandler manages admin-console user endpoints.
type UserHandler struct {
	facade UserAdminFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserAdminFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(&u))
	}
	c.JSON(http.StatusOK, response)
}

// ToggleBan handles PUT /api/users/:id/ban.
func (h *UserHandler) ToggleBan(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	usr, err := h.facade.ToggleBan(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": usr.ID, "banned": usr.Banned}})
}

// Stats handles GET /api/users/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.facade.UserStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalUsers:  stats.Total,
		BannedUsers: stats.Banned,
		ActiveUsers: stats.Active,
	})
}
