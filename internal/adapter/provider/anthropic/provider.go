// Package anthropic implements the completion provider used for activity
// generation on top of the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrEmptyResponse is returned when the model answers without any text block.
var ErrEmptyResponse = errors.New("anthropic: empty response")

// Provider sends a single-turn completion request per call. It does not retry.
type Provider struct {
	client    sdk.Client
	maxTokens int64
	log       *slog.Logger
}

// Options configures a Provider. BaseURL is optional and mostly used by tests.
type Options struct {
	APIKey    string
	BaseURL   string
	MaxTokens int64
	Timeout   time.Duration
}

// NewProvider creates a Provider.
func NewProvider(opts Options, logger *slog.Logger) *Provider {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Provider{
		client:    sdk.NewClient(reqOpts...),
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Complete sends system and prompt to model and returns the concatenated text
// of the reply.
func (p *Provider) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	start := time.Now()

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: p.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "completion request failed",
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	p.log.DebugContext(ctx, "completion received",
		slog.String("model", model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return sb.String(), nil
}
