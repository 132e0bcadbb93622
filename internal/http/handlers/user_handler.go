// README: User endpoints — profile lookup and admin verification.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/http/middleware"
	"foodbridge/internal/modules/user"
	"foodbridge/internal/types"
)

type UserHandler struct {
	users *user.Store
}

func NewUserHandler(store *user.Store) *UserHandler {
	return &UserHandler{users: store}
}

func (h *UserHandler) Me(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	profile, err := h.users.Get(c.Request.Context(), actor.ID)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeData(c, http.StatusOK, profile)
}

type verifyReq struct {
	Verified bool `json:"verified"`
}

// Verify toggles the donor verification flag that unlocks the higher tiers.
func (h *UserHandler) Verify(c *gin.Context) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	id := types.ID(c.Param("id"))
	if err := h.users.SetVerified(c.Request.Context(), id, req.Verified); err != nil {
		writeUserError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "User verification updated", gin.H{"id": id, "verified": req.Verified})
}

func writeUserError(c *gin.Context, err error) {
	if errors.Is(err, user.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "Internal server error")
}
