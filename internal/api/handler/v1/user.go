package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// HandleGetUsers godoc
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.UserListResponse
// @Router       /users [get]
func (h *UserHandler) HandleGetUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetUsers -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.UserListResponse{Users: users})
}

// HandleDeleteUser godoc
// @Summary      Delete a user account (confirm-gated)
// @Tags         users
// @Produce      json
// @Param        userID   path      int     true  "user id"
// @Param        confirm  query     string  true  "must be true"
// @Success      204
// @Failure      400      {object}  response.Err
// @Router       /users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	userID, respErr := parseUintParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	if !requireConfirm(ctx) {
		return
	}

	if err := h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleDeleteUser -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
