package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"membuf/pkg/errors"
)

// membuf Go SDK
//
// This package provides a thin, high-level wrapper around the membuf
// HTTP API so that users can drive a remote table easily from Go code.
//
// All methods return a *ClientError when the server answers with a
// non-successful status code, except the conditions with dedicated
// results: a full buffer is reported through PutOutcome and a missing
// key through errors.ErrKeyNotFound.
//
// Example usage:
//  c := New("http://localhost:8080")
//  ok, err := c.Health()
//  ...

// Client is a high-level HTTP client for a membuf server.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// ClientError represents an error returned by the membuf server.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("membuf: server returned %d %s", e.StatusCode, e.Message)
}

// PutOutcome mirrors the server's classification of an upsert.
type PutOutcome string

const (
	PutOutcomeInserted PutOutcome = "inserted"
	PutOutcomeUpdated  PutOutcome = "updated"
	PutOutcomeRejected PutOutcome = "rejected"
)

// Stats is the occupancy snapshot reported by the server.
type Stats struct {
	Len  int  `json:"len"`
	Cap  int  `json:"cap"`
	Full bool `json:"full"`
}

// New creates a new membuf client.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// request sends an HTTP request and returns the status code and
// response body. Statuses >= 400 are returned, not turned into
// errors; callers decide which ones carry meaning.
func (c *Client) request(method, path string, body any) (int, []byte, error) {
	url := c.BaseURL + path
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, nil
}

// Health checks if the server is healthy. Returns true if healthy.
func (c *Client) Health() (bool, error) {
	status, body, err := c.request(http.MethodGet, "/", nil)
	if err != nil {
		return false, err
	}
	if status != http.StatusOK {
		return false, &ClientError{StatusCode: status, Message: string(body)}
	}
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return false, err
	}
	return result["status"] == "ok", nil
}

// Put upserts a key. A full buffer is a normal outcome
// (PutOutcomeRejected, nil error), matching the server's contract.
func (c *Client) Put(key, value int64) (PutOutcome, error) {
	payload := map[string]int64{"key": key, "value": value}
	status, body, err := c.request(http.MethodPut, "/v1/keys", payload)
	if err != nil {
		return "", err
	}
	switch status {
	case http.StatusCreated:
		return PutOutcomeInserted, nil
	case http.StatusOK:
		return PutOutcomeUpdated, nil
	case http.StatusInsufficientStorage:
		return PutOutcomeRejected, nil
	default:
		return "", &ClientError{StatusCode: status, Message: string(body)}
	}
}

// Get looks up a key. A missing key is errors.ErrKeyNotFound.
func (c *Client) Get(key int64) (int64, error) {
	status, body, err := c.request(http.MethodGet, "/v1/keys/"+strconv.FormatInt(key, 10), nil)
	if err != nil {
		return 0, err
	}
	switch status {
	case http.StatusOK:
		var result struct {
			Value int64 `json:"value"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return 0, err
		}
		return result.Value, nil
	case http.StatusNotFound:
		return 0, errors.ErrKeyNotFound
	default:
		return 0, &ClientError{StatusCode: status, Message: string(body)}
	}
}

// Stats fetches the server's occupancy snapshot.
func (c *Client) Stats() (*Stats, error) {
	status, body, err := c.request(http.MethodGet, "/v1/stats", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &ClientError{StatusCode: status, Message: string(body)}
	}
	var stats Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
