// Package ai is a thin HTTP client for the external model server that
// provides speech-to-text, translation, text-to-speech and image
// description. The client is stateless; pipelines decide whether a failure
// is fatal, placeholder-substituted, or surfaced to the user.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUnavailable wraps every failure mode of the model server so that
// callers can dispatch on it with errors.Is.
var ErrUnavailable = errors.New("ai service unavailable")

// File carries an uploaded blob into a multipart AI request.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service defines the four remote capabilities of the model server.
type Service interface {
	// Transcribe runs speech-to-text on the audio file.
	Transcribe(ctx context.Context, audio File, language string) (string, error)
	// Translate translates text into targetLang. sourceLang is an optional
	// hint for the model; pass "" when unknown.
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
	// Synthesize runs text-to-speech and returns base64-encoded audio bytes.
	Synthesize(ctx context.Context, text, lang string) (string, error)
	// Describe generates a caption for the image file.
	Describe(ctx context.Context, image File) (string, error)
}

// client implements Service over plain HTTP. The underlying http.Client is
// long-lived and shared across requests.
type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an AI service client for the given base URL. Every call
// is bounded by the configured timeout on top of the request context.
func NewClient(baseURL string, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) Transcribe(ctx context.Context, audio File, language string) (string, error) {
	if language == "" {
		language = "English"
	}
	fields := map[string]string{"language": language}

	var resp struct {
		Transcript string `json:"transcript"`
	}
	if err := c.postMultipart(ctx, "/stt", audio, fields, &resp); err != nil {
		log.Printf("ERROR: STT service error: %v", err)
		return "", fmt.Errorf("%w: stt: %v", ErrUnavailable, err)
	}
	return resp.Transcript, nil
}

func (c *client) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	payload := map[string]string{
		"text":        text,
		"target_lang": targetLang,
	}
	if sourceLang != "" {
		payload["source_lang"] = sourceLang
	}

	var resp struct {
		TranslatedText string `json:"translated_text"`
	}
	if err := c.postJSON(ctx, "/translate", payload, &resp); err != nil {
		log.Printf("ERROR: Translation service error: %v", err)
		return "", fmt.Errorf("%w: translate: %v", ErrUnavailable, err)
	}
	return resp.TranslatedText, nil
}

func (c *client) Synthesize(ctx context.Context, text, lang string) (string, error) {
	payload := map[string]string{
		"text": text,
		"lang": lang,
	}

	var resp struct {
		AudioData string `json:"audio_data"`
	}
	if err := c.postJSON(ctx, "/tts", payload, &resp); err != nil {
		log.Printf("ERROR: TTS service error: %v", err)
		return "", fmt.Errorf("%w: tts: %v", ErrUnavailable, err)
	}
	return resp.AudioData, nil
}

func (c *client) Describe(ctx context.Context, image File) (string, error) {
	var resp struct {
		Description string `json:"description"`
	}
	if err := c.postMultipart(ctx, "/describe-image", image, nil, &resp); err != nil {
		log.Printf("ERROR: Image description service error: %v", err)
		return "", fmt.Errorf("%w: describe-image: %v", ErrUnavailable, err)
	}
	return resp.Description, nil
}

func (c *client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *client) postMultipart(ctx context.Context, path string, file File, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return err
	}
	if _, err = part.Write(file.Data); err != nil {
		return err
	}
	for key, value := range fields {
		if err = writer.WriteField(key, value); err != nil {
			return err
		}
	}
	if err = writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the log, but never forward it
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
