package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/domain"
)

type AuditService interface {
	ListLogs(ctx context.Context, filter domain.AuditFilter) (domain.AuditPage, error)
	Stats(ctx context.Context) ([]domain.AuditStat, error)
}

type LoggingHandler struct {
	svc AuditService
}

func NewLoggingHandler(svc AuditService) *LoggingHandler {
	return &LoggingHandler{svc: svc}
}

func auditFilterFromQuery(ctx *gin.Context) domain.AuditFilter {
	userID, _ := strconv.ParseUint(ctx.Query("userId"), 10, 32)
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	return domain.AuditFilter{
		Action:     ctx.Query("action"),
		EntityType: ctx.Query("entityType"),
		UserID:     uint(userID),
		StartDate:  ctx.Query("startDate"),
		EndDate:    ctx.Query("endDate"),
		Page:       page,
		Limit:      limit,
	}
}

// HandleGetLogs godoc
// @Summary      List audit log entries
// @Tags         logging
// @Produce      json
// @Param        action      query     string  false  "action filter"
// @Param        entityType  query     string  false  "entity type filter"
// @Param        userId      query     int     false  "acting user filter"
// @Param        startDate   query     string  false  "range start (inclusive)"
// @Param        endDate     query     string  false  "range end (inclusive)"
// @Param        page        query     int     false  "page number"
// @Param        limit       query     int     false  "page size"
// @Success      200         {object}  domain.AuditPage
// @Router       /logging [get]
func (h *LoggingHandler) HandleGetLogs(ctx *gin.Context) {
	page, err := h.svc.ListLogs(ctx.Request.Context(), auditFilterFromQuery(ctx))
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetLogs -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleGetLogStats godoc
// @Summary      Aggregate audit log counts per action
// @Tags         logging
// @Produce      json
// @Success      200  {array}  domain.AuditStat
// @Router       /logging/stats [get]
func (h *LoggingHandler) HandleGetLogStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleGetLogStats -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
