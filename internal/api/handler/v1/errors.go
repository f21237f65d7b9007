package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/service"
)

var errConfirmationRequired = errors.New("Bitte bestätigen Sie diese Aktion.")

// renderServiceErr maps the error taxonomy onto HTTP statuses: validation
// errors stay 400, the auth sentinels keep their German messages on 401/403,
// an in-flight mutation is a conflict, upstream statuses pass through and
// malformed upstream payloads surface as bad gateway.
func renderServiceErr(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		response.RenderErr(ctx, response.ErrBadRequest(validationErr))
		return
	}

	if errors.Is(err, service.ErrAuthenticationRequired) {
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrAuthenticationRequired))
		return
	}
	if errors.Is(err, service.ErrForbidden) {
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrForbidden))
		return
	}
	if errors.Is(err, service.ErrMutationInFlight) {
		response.RenderErr(ctx, response.ErrConflict(service.ErrMutationInFlight))
		return
	}

	var requestErr *backend.RequestError
	if errors.As(err, &requestErr) {
		response.RenderErr(ctx, response.NewErr(requestErr.Status, requestErr))
		return
	}

	var malformedErr *backend.MalformedResponseError
	if errors.As(err, &malformedErr) {
		response.RenderErr(ctx, response.ErrBadGateway(malformedErr))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

func parseUintParam(ctx *gin.Context, name string) (uint, *response.Err) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v (%v)", name, ctx.Param(name)))
	}

	return uint(value), nil
}

// requireConfirm gates destructive operations behind an explicit
// confirm=true query flag.
func requireConfirm(ctx *gin.Context) bool {
	if ctx.Query("confirm") != "true" {
		response.RenderErr(ctx, response.ErrBadRequest(errConfirmationRequired))
		return false
	}
	return true
}
