package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	genai "google.golang.org/genai"
)

// Client is the advisory boundary. Implementations return the model's raw
// text response; recovery and schema validation happen in the caller.
type Client interface {
	// GenerateJSON sends the prompt and returns the raw response text.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Name identifies the backing model for logs.
	Name() string
}

// DefaultTimeout bounds one advisory call cooperatively.
const DefaultTimeout = 45 * time.Second

// GeminiClient is a thin wrapper around the official genai client. It only
// covers the API call itself; classification and recovery are applied by the
// caller.
type GeminiClient struct {
	cli     *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed advisory client. The genai client
// reads GEMINI_API_KEY from the environment.
func NewGeminiClient(ctx context.Context, model string, timeout time.Duration) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, ClassifyError(ctx, err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiClient{cli: cli, model: model, timeout: timeout}, nil
}

func (g *GeminiClient) Name() string { return "gemini:" + g.model }

// GenerateJSON asks for application/json and returns the first candidate's
// text. Transport failures come back as classified ServiceErrors.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", ClassifyError(ctx, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedResponseError{Snippet: "empty response"}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Ask runs the full boundary round trip: call, recover, strict decode.
func Ask(ctx context.Context, client Client, in PromptInput) (*Candidate, error) {
	prompt, err := BuildPrompt(in)
	if err != nil {
		return nil, err
	}
	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}
	recovered, err := RecoverJSON(raw)
	if err != nil {
		return nil, err
	}
	candidate, err := DecodeCandidate(recovered)
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// EncodeCandidate round-trips a candidate back to JSON; used by the cache.
func EncodeCandidate(c *Candidate) (json.RawMessage, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("advisory: encode candidate: %w", err)
	}
	return data, nil
}
