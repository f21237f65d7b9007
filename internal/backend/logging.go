package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/talentbinder/dashboard/internal/domain"
)

// LoggingClient reads the audit trail. Unlike the other resource families the
// logging endpoints return the page object directly, without the success
// envelope.
type LoggingClient struct {
	c *Client
}

func NewLoggingClient(c *Client) *LoggingClient {
	return &LoggingClient{c: c}
}

func auditQuery(filter domain.AuditFilter) url.Values {
	query := url.Values{}
	if filter.Action != "" {
		query.Set("action", filter.Action)
	}
	if filter.EntityType != "" {
		query.Set("entityType", filter.EntityType)
	}
	if filter.UserID != 0 {
		query.Set("userId", strconv.FormatUint(uint64(filter.UserID), 10))
	}
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}
	if filter.Page != 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit != 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

func (lc *LoggingClient) GetAll(ctx context.Context, filter domain.AuditFilter) (domain.AuditPage, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/logging", auditQuery(filter), nil)
	if err != nil {
		return domain.AuditPage{}, fmt.Errorf("logging.GetAll -> %w", err)
	}
	if err := checkStatus(resp, raw); err != nil {
		return domain.AuditPage{}, err
	}

	var page domain.AuditPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return domain.AuditPage{}, &MalformedResponseError{Err: err}
	}

	return page, nil
}

func (lc *LoggingClient) Stats(ctx context.Context) ([]domain.AuditStat, error) {
	resp, raw, err := lc.c.do(ctx, http.MethodGet, "/logging/stats", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("logging.Stats -> %w", err)
	}
	if err := checkStatus(resp, raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Stats []domain.AuditStat `json:"stats"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	return envelope.Stats, nil
}
