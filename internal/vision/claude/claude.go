package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/pkg/config"
	"rentmarket/internal/vision"
)

const defaultAPIURL = "https://api.anthropic.com/v1/messages"

// anthropicVersion is the Anthropic Messages API version header value.
const anthropicVersion = "2023-06-01"

// request types mirror the Anthropic Messages API structure.
type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string  `json:"role"`
	Content []block `json:"content"`
}

type block struct {
	Type   string  `json:"type"`
	Text   string  `json:"text,omitempty"`
	Source *source `json:"source,omitempty"`
}

type source struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type ClaudeAnalyzer struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

func NewClaudeAnalyzer(cfg config.VisionConfig) *ClaudeAnalyzer {
	return &ClaudeAnalyzer{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{},
		baseURL: defaultAPIURL,
	}
}

func (a *ClaudeAnalyzer) Enabled() bool {
	return a.apiKey != ""
}

// buildMessages constructs the message payload: one URL image block per photo
// followed by the analysis prompt, with the uploader's notes appended when
// present.
func buildMessages(photoURLs []string, notes string) []message {
	content := make([]block, 0, len(photoURLs)+1)
	for _, u := range photoURLs {
		content = append(content, block{
			Type:   "image",
			Source: &source{Type: "url", URL: u},
		})
	}

	prompt := vision.AnalysisPrompt
	if strings.TrimSpace(notes) != "" {
		prompt += "\n\nUploader notes: " + notes
	}
	content = append(content, block{Type: "text", Text: prompt})

	return []message{{Role: "user", Content: content}}
}

func (a *ClaudeAnalyzer) AnalyzeCondition(ctx context.Context, photoURLs []string, notes string) (*conditioncheck.Analysis, error) {
	body := request{
		Model:     a.model,
		MaxTokens: 1024,
		Messages:  buildMessages(photoURLs, notes),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close claude response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("claude returned status %d: %s", resp.StatusCode, errBody)
	}

	var respBody response
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var responseText string
	for _, blk := range respBody.Content {
		if blk.Type == "text" {
			responseText = blk.Text
			break
		}
	}

	return vision.ParseAnalysis(responseText)
}
