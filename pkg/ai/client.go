// Package ai provides the suggestion capability behind the suggester: an
// HTTP client for an external ai-service plus a static generator used when
// no service is configured.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client calls the external ai-service chat endpoint and extracts the JSON
// array of suggestions from its output.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://ai-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// Source is what the suggester consumes; both Client and StaticSource
// implement it.
type Source interface {
	GenerateBullets(ctx context.Context, position, description string) ([]string, error)
	SuggestSkills(ctx context.Context, position string) ([]string, error)
}

// NewSourceFromEnv returns the HTTP client when AI_SERVICE_URL is set and
// the static generator otherwise.
func NewSourceFromEnv() Source {
	if os.Getenv("AI_SERVICE_URL") != "" {
		return NewClient()
	}
	return NewStaticSource()
}

// GenerateBullets asks the service for resume bullet points for a position.
func (c *Client) GenerateBullets(ctx context.Context, position, description string) ([]string, error) {
	instr := "Return ONLY a JSON array of 5 concise, impactful resume bullet point strings for the given position and description. Use action verbs and quantify results where possible. Do NOT include any extra text."
	userCtx := map[string]interface{}{
		"position":     position,
		"description":  description,
		"instructions": instr,
	}
	return c.chatForStrings(ctx, "Generate resume bullet points:\n"+mustMarshal(userCtx))
}

// SuggestSkills asks the service for relevant skill names for a position.
func (c *Client) SuggestSkills(ctx context.Context, position string) ([]string, error) {
	instr := "Return ONLY a JSON array of 5 relevant skill name strings for the given job position. Do NOT include any extra text."
	userCtx := map[string]interface{}{
		"position":     position,
		"instructions": instr,
	}
	return c.chatForStrings(ctx, "Suggest skills:\n"+mustMarshal(userCtx))
}

func (c *Client) chatForStrings(ctx context.Context, input string) ([]string, error) {
	reqObj := map[string]interface{}{"agent": "auto", "input": input}
	b, _ := json.Marshal(reqObj)

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(rb, &chatResp); err != nil {
		return nil, err
	}

	var out []string
	if err := json.Unmarshal([]byte(chatResp.Output), &out); err != nil {
		// Try extracting the array if the model wrapped it in markdown
		if sub, ok := extractArray(chatResp.Output); ok {
			if err2 := json.Unmarshal([]byte(sub), &out); err2 == nil {
				return out, nil
			}
		}
		return nil, fmt.Errorf("ai-service returned non-json content: %w", err)
	}
	return out, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// extractArray finds the outermost JSON array in a string.
func extractArray(s string) (string, bool) {
	start := -1
	end := -1
	for i, r := range s {
		if r == '[' {
			start = i
			break
		}
	}
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ']' {
			end = i
			break
		}
	}
	if start >= 0 && end > start {
		return s[start : end+1], true
	}
	return "", false
}

// mustMarshal is a helper for embedding payloads in prompts
func mustMarshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
