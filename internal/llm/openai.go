package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIGateway implements Gateway against the OpenAI API.
type openAIGateway struct {
	cfg      Config
	client   openai.Client
	observer Observer
}

// NewOpenAIGateway creates a Gateway backed by the OpenAI chat completion
// and transcription endpoints. A non-empty BaseURL redirects all calls,
// which is how tests point the gateway at a local server.
func NewOpenAIGateway(cfg Config, observer Observer) Gateway {
	if observer == nil {
		observer = NoopObserver{}
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &openAIGateway{
		cfg:      cfg,
		client:   openai.NewClient(opts...),
		observer: observer,
	}
}

func (g *openAIGateway) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.cfg.Model),
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   openai.Int(int64(g.cfg.MaxTokens)),
		Temperature: openai.Float(g.cfg.Temperature),
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", g.fail(KindComplete, start, err)
	}
	if len(completion.Choices) == 0 {
		return "", g.fail(KindComplete, start, ErrEmptyCompletion)
	}

	g.observer.OnCallComplete(CallEvent{
		Kind:      KindComplete,
		Model:     g.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   true,
	})
	return completion.Choices[0].Message.Content, nil
}

func (g *openAIGateway) Transcribe(ctx context.Context, audio []byte) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	transcription, err := g.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(g.cfg.TranscriptionModel),
		File:  openai.File(bytes.NewReader(audio), "audio.wav", "audio/wav"),
	})
	if err != nil {
		return "", g.fail(KindTranscribe, start, err)
	}

	g.observer.OnCallComplete(CallEvent{
		Kind:      KindTranscribe,
		Model:     g.cfg.TranscriptionModel,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   true,
	})
	return transcription.Text, nil
}

func toOpenAIMessages(messages []ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

func (g *openAIGateway) fail(kind CallKind, start time.Time, err error) error {
	mapped := mapError(err)
	g.observer.OnCallComplete(CallEvent{
		Kind:      kind,
		Model:     g.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(mapped),
	})
	return mapped
}

func mapError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyCompletion):
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}
