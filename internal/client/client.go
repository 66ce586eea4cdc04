// Package client talks to the rehab API on behalf of the athlete's device.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/recovery"
	"github.com/limbo/rehab/internal/triage"
	"github.com/limbo/rehab/pkg/entity"
	"github.com/limbo/rehab/pkg/httputil"
)

var (
	_ triage.Catalog           = (*Client)(nil)
	_ triage.Activator         = (*Client)(nil)
	_ recovery.InjuryDirectory = (*Client)(nil)
	_ recovery.HomeworkSource  = (*Client)(nil)
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New builds a client for baseURL, e.g. http://127.0.0.1:8080/api/v1. Requests carry token as a bearer.
func New(baseURL, token string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type assignRequest struct {
	PlayerID        string `json:"player_id"`
	InjuryLibraryID int64  `json:"injury_library_id"`
}

func (c *Client) InjuriesByArea(ctx context.Context, bodyArea string) ([]entity.InjuryCatalogEntry, error) {
	entries := make([]entity.InjuryCatalogEntry, 0)
	_, err := c.do(ctx, http.MethodGet, "/injuries/library/"+url.PathEscape(bodyArea), nil, &entries, nil)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) Activate(ctx context.Context, playerID uuid.UUID, injuryLibraryID int64) (*entity.ActiveInjury, error) {
	var injury entity.ActiveInjury
	_, err := c.do(ctx, http.MethodPost, "/injuries/assign", assignRequest{
		PlayerID:        playerID.String(),
		InjuryLibraryID: injuryLibraryID,
	}, &injury, map[int]error{
		http.StatusConflict:   errorvalues.ErrActivationConflict,
		http.StatusNotFound:   errorvalues.ErrCatalogEntryNotFound,
		http.StatusBadRequest: errorvalues.ErrValidation,
	})
	if err != nil {
		return nil, err
	}
	return &injury, nil
}

// CurrentInjury returns nil without error when the player has no active injury.
func (c *Client) CurrentInjury(ctx context.Context, playerID uuid.UUID) (*entity.ActiveInjury, error) {
	var injury entity.ActiveInjury
	status, err := c.do(ctx, http.MethodGet, "/injuries/current/"+playerID.String(), nil, &injury, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &injury, nil
}

func (c *Client) ResolveInjury(ctx context.Context, injuryID int64) (*entity.ActiveInjury, error) {
	var injury entity.ActiveInjury
	_, err := c.do(ctx, http.MethodPost, "/injuries/resolve/"+strconv.FormatInt(injuryID, 10), nil, &injury, map[int]error{
		http.StatusNotFound: errorvalues.ErrInjuryNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &injury, nil
}

func (c *Client) UpdateProgress(ctx context.Context, injuryID int64, percent int) (*entity.ActiveInjury, error) {
	var injury entity.ActiveInjury
	path := "/injuries/progress/" + strconv.FormatInt(injuryID, 10) + "?percent=" + strconv.Itoa(percent)
	_, err := c.do(ctx, http.MethodPost, path, nil, &injury, map[int]error{
		http.StatusNotFound:   errorvalues.ErrInjuryNotFound,
		http.StatusBadRequest: errorvalues.ErrInvalidProgress,
	})
	if err != nil {
		return nil, err
	}
	return &injury, nil
}

func (c *Client) DailyHomework(ctx context.Context, playerID uuid.UUID) (*entity.DailyHomework, error) {
	var hw entity.DailyHomework
	if _, err := c.do(ctx, http.MethodGet, "/homework/"+playerID.String(), nil, &hw, nil); err != nil {
		return nil, err
	}
	return &hw, nil
}

// do sends one request. Statuses listed in statusErrs map to those sentinels, the rest of
// the non-2xx answers become generic errors. Transport failures wrap ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, in, out any, statusErrs map[int]error) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := sonic.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return 0, fmt.Errorf("%w: %s %s: %v", errorvalues.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("api response", slog.String("method", method), slog.String("path", path), slog.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return resp.StatusCode, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return resp.StatusCode, nil
		}
		if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decoding response: %v", errorvalues.ErrNetwork, err)
		}
		return resp.StatusCode, nil
	}

	message := httputil.ReadErrorMessage(resp.Body)
	if sentinel, ok := statusErrs[resp.StatusCode]; ok {
		return resp.StatusCode, fmt.Errorf("%w: %s", sentinel, message)
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return resp.StatusCode, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, message)
	case http.StatusForbidden:
		return resp.StatusCode, fmt.Errorf("%w: %s", errorvalues.ErrForbidden, message)
	}
	return resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, message)
}
