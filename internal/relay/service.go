package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint       = "https://openrouter.ai/api/v1/chat/completions"
	DefaultVisionModel    = "openai/gpt-4o-mini"
	DefaultReasoningModel = "openai/o1-mini"
)

var ErrMissingAPIKey = errors.New("openrouter api key is missing")

// Config holds everything the service needs. Zero values fall back to the
// OpenRouter defaults above, except APIKey which is required.
type Config struct {
	APIKey         string
	Endpoint       string
	VisionModel    string
	ReasoningModel string
	HTTPClient     *http.Client
}

// Service relays image and question requests to a chat completion API.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	apiKey         string
	endpoint       string
	visionModel    string
	reasoningModel string
	client         *http.Client
}

func New(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	service := &Service{
		apiKey:         cfg.APIKey,
		endpoint:       cfg.Endpoint,
		visionModel:    cfg.VisionModel,
		reasoningModel: cfg.ReasoningModel,
		client:         cfg.HTTPClient,
	}
	if service.endpoint == "" {
		service.endpoint = DefaultEndpoint
	}
	if service.visionModel == "" {
		service.visionModel = DefaultVisionModel
	}
	if service.reasoningModel == "" {
		service.reasoningModel = DefaultReasoningModel
	}
	if service.client == nil {
		service.client = &http.Client{}
	}

	return service, nil
}

// TranscribeImage turns a photographed question into plain text.
func (s *Service) TranscribeImage(ctx context.Context, image []byte) Result[string] {
	if len(image) == 0 {
		return Failure[string](newError(InvalidInput, "image is empty"))
	}
	return s.complete(ctx, KindImagePrompt, s.imageRequest(transcribeInstruction, image))
}

// TitleImage produces a short title for a photographed question.
func (s *Service) TitleImage(ctx context.Context, image []byte) Result[string] {
	if len(image) == 0 {
		return Failure[string](newError(InvalidInput, "image is empty"))
	}
	return s.complete(ctx, KindImageTitle, s.imageRequest(titleInstruction, image))
}

// AnswerQuestion explains and answers a text question.
func (s *Service) AnswerQuestion(ctx context.Context, question string) Result[string] {
	if strings.TrimSpace(question) == "" {
		return Failure[string](newError(InvalidInput, "question cannot be empty"))
	}
	return s.complete(ctx, KindTextQuestion, ChatRequest{
		Model:    s.reasoningModel,
		Messages: []ChatMessage{systemMessage(answerInstruction), textMessage(question)},
	})
}

func (s *Service) imageRequest(instruction string, image []byte) ChatRequest {
	return ChatRequest{
		Model:    s.visionModel,
		Messages: []ChatMessage{systemMessage(instruction), imageMessage(image)},
	}
}

// complete performs the single upstream exchange shared by all request kinds.
// It never returns a Go error; every failure ends up in the Result.
func (s *Service) complete(ctx context.Context, kind Kind, chatRequest ChatRequest) Result[string] {
	logger := zerolog.Ctx(ctx).With().
		Str("kind", kind.String()).
		Str("model", chatRequest.Model).
		Logger()

	jsonBody, err := json.Marshal(chatRequest)
	if err != nil {
		return Failure[string](newError(TransportError, "failed to encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return Failure[string](newError(TransportError, "failed to build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	logger.Debug().
		Str("endpoint", s.endpoint).
		Str("authorization", "Bearer "+maskKey(s.apiKey)).
		Int("body_bytes", len(jsonBody)).
		Msg("Sending chat completion request")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Chat completion request failed")
		return Failure[string](newError(TransportError, "%v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read chat completion response")
		return Failure[string](newError(TransportError, "failed to read response: %v", err))
	}

	logger = logger.With().Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Logger()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Msg("Chat completion API returned an error status")
		return Failure[string](&Error{
			Kind:       UpstreamHTTPError,
			Message:    fmt.Sprintf("API Error: %s - %s", resp.Status, body),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		})
	}

	answer, perr := extractContent(body)
	if perr != nil {
		logger.Warn().Err(perr).Msg("Unusable chat completion response")
		return Failure[string](perr)
	}

	logger.Info().Int("answer_length", len(answer)).Msg("Chat completion succeeded")
	return Success(answer)
}

func extractContent(body []byte) (string, *Error) {
	if !gjson.ValidBytes(body) {
		return "", newError(UpstreamParseError, "invalid JSON in response")
	}

	choices := gjson.GetBytes(body, "choices")
	if !choices.IsArray() || len(choices.Array()) == 0 {
		return "", newError(UpstreamParseError, "no choices returned")
	}

	content := choices.Get("0.message.content")
	if content.Type != gjson.String {
		return "", newError(UpstreamParseError, "no message content in first choice")
	}

	return content.String(), nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
