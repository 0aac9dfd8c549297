package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Default REST endpoint settings.
const (
	DefaultURL     = "http://localhost:8080/api/scores"
	DefaultTimeout = 5 * time.Second
)

// RESTClient talks to a remote score server over HTTP.
type RESTClient struct {
	baseURL   string
	client    *http.Client
	logger    *log.Logger
	available atomic.Bool
}

// NewRESTClient creates a client for the scores collection at baseURL.
// Empty values fall back to DefaultURL and DefaultTimeout.
func NewRESTClient(baseURL string, timeout time.Duration, logger *log.Logger) *RESTClient {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// URL returns the scores collection URL.
func (c *RESTClient) URL() string {
	return c.baseURL
}

// Initialize probes the collection with a GET.
func (c *RESTClient) Initialize(ctx context.Context) error {
	c.logger.Info("probing score service", "url", c.baseURL)

	resp, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		c.available.Store(false)
		c.logger.Warn("score service unavailable", "err", err)
		return fmt.Errorf("score: cannot reach %s: %w", c.baseURL, err)
	}
	drain(resp)

	ok := success(resp.StatusCode)
	c.available.Store(ok)
	if !ok {
		c.logger.Warn("score service unavailable", "status", resp.StatusCode)
		return fmt.Errorf("score: probe returned HTTP %d", resp.StatusCode)
	}
	c.logger.Info("score service available")
	return nil
}

// Available implements Service.
func (c *RESTClient) Available() bool {
	return c.available.Load()
}

type submitRequest struct {
	PlayerName string `json:"playerName"`
	ScoreValue int    `json:"scoreValue"`
}

// SubmitScore implements Service.
func (c *RESTClient) SubmitScore(ctx context.Context, player string, value int) bool {
	if !c.Available() {
		c.logger.Warn("cannot submit score: service is unavailable")
		return false
	}

	body, err := json.Marshal(submitRequest{PlayerName: player, ScoreValue: value})
	if err != nil {
		c.logger.Warn("cannot encode score", "err", err)
		return false
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		c.logger.Warn("error submitting score", "err", err)
		return false
	}
	drain(resp)

	if !success(resp.StatusCode) {
		c.logger.Warn("failed to submit score", "status", resp.StatusCode)
		return false
	}
	c.logger.Info("score submitted", "player", player, "score", value)
	return true
}

// TopScores implements Service.
func (c *RESTClient) TopScores(ctx context.Context, limit int) []ScoreData {
	u := c.baseURL + "/top"
	if limit > 0 {
		u = fmt.Sprintf("%s?limit=%d", c.baseURL, limit)
	}
	var out []ScoreData
	if !c.getJSON(ctx, "top scores", u, &out) {
		return nil
	}
	return out
}

// PlayerHighScore implements Service.
func (c *RESTClient) PlayerHighScore(ctx context.Context, player string) (ScoreData, bool) {
	var out ScoreData
	u := c.baseURL + "/player/" + url.PathEscape(player) + "/highest"
	if !c.getJSON(ctx, "player high score", u, &out) {
		return ScoreData{}, false
	}
	return out, true
}

// PlayerScores implements Service.
func (c *RESTClient) PlayerScores(ctx context.Context, player string) []ScoreData {
	var out []ScoreData
	if !c.getJSON(ctx, "player scores", c.baseURL+"/player/"+url.PathEscape(player), &out) {
		return nil
	}
	return out
}

func (c *RESTClient) getJSON(ctx context.Context, what, u string, v any) bool {
	if !c.Available() {
		c.logger.Warn("cannot get "+what+": service is unavailable")
		return false
	}

	resp, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Warn("error getting "+what, "err", err)
		return false
	}
	defer drain(resp)

	if !success(resp.StatusCode) {
		c.logger.Warn("failed to get "+what, "status", resp.StatusCode)
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.logger.Warn("cannot decode "+what, "err", err)
		return false
	}
	return true
}

func (c *RESTClient) do(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.client.Do(req)
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func drain(resp *http.Response) {
	//nolint:errcheck // Best-effort drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

var _ Service = (*RESTClient)(nil)
