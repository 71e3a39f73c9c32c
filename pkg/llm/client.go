// Package llm wraps the Anthropic API behind a small generation interface.
package llm

import (
	"context"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Message is one conversation turn sent to the model.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Request is a single generation request.
type Request struct {
	System   string
	Messages []Message
}

// StreamChunk is one incremental text fragment from a streaming response.
type StreamChunk struct {
	Content string
}

// Generator produces model completions. Satisfied by Client; handlers accept
// this interface so tests can substitute a fake.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	GenerateStream(ctx context.Context, req Request) (<-chan StreamChunk, <-chan error)
}

// Config holds model provider settings.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Client talks to the Anthropic Messages API.
type Client struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    *slog.Logger
}

// NewClient creates a model client from configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		logger:    logger.With("component", "llm"),
	}
}

func (c *Client) buildParams(req Request) anthropic.MessageNewParams {
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  messages,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params
}

// Generate returns the complete response text for a request.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	message, err := c.client.Messages.New(ctx, c.buildParams(req))
	if err != nil {
		return "", classifyError(err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

// GenerateStream streams the response as incremental text chunks. The chunks
// channel is closed when the stream ends; a terminal failure is delivered on
// the error channel instead. Canceling ctx aborts the provider call.
func (c *Client) GenerateStream(ctx context.Context, req Request) (<-chan StreamChunk, <-chan error) {
	chunks := make(chan StreamChunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		stream := c.client.Messages.NewStreaming(ctx, c.buildParams(req))
		for stream.Next() {
			event := stream.Current()
			deltaEvent, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
			if !ok {
				continue
			}
			textDelta, ok := deltaEvent.Delta.AsAny().(anthropic.TextDelta)
			if !ok || textDelta.Text == "" {
				continue
			}

			select {
			case chunks <- StreamChunk{Content: textDelta.Text}:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}

		if err := stream.Err(); err != nil {
			c.logger.Warn("stream failed", "error", err)
			errs <- classifyError(err)
			return
		}
	}()

	return chunks, errs
}
