package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
	"majsoul-tracker/internal/config"
	"majsoul-tracker/internal/constants"
	"majsoul-tracker/internal/domain"
)

// Client talks to the amae-koromo data API. One base origin per rule:
// the 3-player and 4-player datasets live on separate paths.
type Client struct {
	cfg    *config.Config
	client *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// SearchResult is one entry of the search_player response. The upstream
// returns candidates ordered by relevance; callers take the first.
type SearchResult struct {
	ID       uint64 `json:"id"`
	Nickname string `json:"nickname"`
}

// RecordPlayer is one participant inside a raw match record.
type RecordPlayer struct {
	AccountID    uint64 `json:"accountId"`
	Nickname     string `json:"nickname"`
	Score        int64  `json:"score"`
	GradingScore int64  `json:"gradingScore"`
}

// PlayerRecord is one raw match record from the player_records endpoint.
// StartTime/EndTime are upstream-unit timestamps (seconds).
type PlayerRecord struct {
	ModeID    uint64         `json:"modeId"`
	StartTime int64          `json:"startTime"`
	EndTime   int64          `json:"endTime"`
	Players   []RecordPlayer `json:"players"`
}

// SearchPlayer resolves a display name to candidate accounts under the
// given rule. An empty slice means no such player.
func (c *Client) SearchPlayer(ctx context.Context, rule domain.GameRule, name string) ([]SearchResult, error) {
	reqURL := fmt.Sprintf("%s/search_player/%s?tag=all", c.cfg.APIBase(rule), url.PathEscape(name))
	return doRequest[[]SearchResult](ctx, c, reqURL)
}

// GetPlayerRecords fetches one page of the player's match records, newest
// first, strictly below cursor and at or above the fixed historical floor.
func (c *Client) GetPlayerRecords(ctx context.Context, rule domain.GameRule, playerID uint64, cursor int64) ([]PlayerRecord, error) {
	reqURL := fmt.Sprintf("%s/player_records/%d/%d/%d?limit=%d&mode=%s&descending=true",
		c.cfg.APIBase(rule), playerID, cursor, constants.HistoryFloorTimestamp,
		constants.HistoryPageLimit, rule.ModeIDs())
	return doRequest[[]PlayerRecord](ctx, c, reqURL)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (T, error) {
	var result T

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return result, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return result, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return result, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, err
	}
	return result, nil
}
