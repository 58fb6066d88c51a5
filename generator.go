package nandoku

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// RetryPolicy controls the network behavior of generator calls. Keeping it
// a value makes failure paths easy to exercise in tests.
type RetryPolicy struct {
	MaxAttempts     int           // total attempts, including the first
	ConnectTimeout  time.Duration // TCP dial timeout
	ResponseTimeout time.Duration // full request/response timeout
	Backoff         time.Duration // fixed pause between attempts
}

// DefaultRetryPolicy mirrors the backend client settings this service has
// always run with: 10s connect, 30s response, 3 attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		ConnectTimeout:  10 * time.Second,
		ResponseTimeout: 30 * time.Second,
		Backoff:         500 * time.Millisecond,
	}
}

// Generator produces wrong-answer candidates for a place name using an
// OpenAI-compatible chat-completions backend.
type Generator struct {
	client *openai.Client
	model  string
	policy RetryPolicy
}

// NewGenerator creates a generator from the service configuration. An
// OpenAIBaseURL override points the client at a different compatible
// backend (also how tests inject an httptest server).
func NewGenerator(cfg Config, policy RetryPolicy) *Generator {
	cc := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		cc.BaseURL = cfg.OpenAIBaseURL
	}
	cc.HTTPClient = &http.Client{
		Timeout: policy.ResponseTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: policy.ConnectTimeout}).DialContext,
		},
	}
	return &Generator{
		client: openai.NewClientWithConfig(cc),
		model:  cfg.Model,
		policy: policy,
	}
}

const maxDistractorTokens = 1000

// GenerateDistractors asks the backend for three readings that are easily
// confused with the given place name. A response whose JSON object lacks
// the "options" field yields an empty slice and no error; everything else
// that goes wrong comes back as a *GenerationError.
func (g *Generator) GenerateDistractors(ctx context.Context, name string) (options []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			options, err = nil, &GenerationError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	prompt := buildDistractorPrompt(name)
	VerboseLog("Requesting distractors for %q", name)

	content, err := g.complete(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	VerboseLog("Backend response for %q: %s", name, content)

	raw, ok := ExtractJSONObject(content)
	if !ok {
		return nil, &GenerationError{Err: fmt.Errorf("no JSON object in response: %q", content)}
	}

	var parsed struct {
		Options []string `json:"options"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("malformed response JSON: %w", err)}
	}
	if parsed.Options == nil {
		// Missing field is a shape quirk, not a failure.
		return []string{}, nil
	}
	return parsed.Options, nil
}

// complete runs one chat completion with the configured retry policy.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	attempts := g.policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     g.model,
			MaxTokens: maxDistractorTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("no choices in backend response")
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		if !isTransient(err) || attempt == attempts {
			break
		}
		VerboseLog("Generation attempt %d/%d failed, retrying: %v", attempt, attempts, err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.policy.Backoff):
		}
	}
	return "", lastErr
}

// isTransient reports whether a backend error is worth retrying:
// rate limits, server-side failures, and transport errors. Client-side
// errors (bad key, bad request) fail immediately.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	// Anything that never produced an HTTP status is a transport failure.
	return true
}

func buildDistractorPrompt(name string) string {
	return fmt.Sprintf(`日本の北海道の地名「%s」の読み方クイズを作成しています。
正解の選択肢「%s」と非常によく似ていて、間違いやすい選択肢を3つだけ挙げてください。
JSON形式で、"options"というキーに、文字列の配列として3つの選択肢を入れてください。
例:
{
    "options": ["おしゃまんべ", "おさまんべ", "おしゃまべ"]
}`, name, name)
}
