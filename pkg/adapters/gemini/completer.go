// Package gemini adapts Google's Gemini API to ports.Completer.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/wolfpad/wolfpad/pkg/domain"
	"github.com/wolfpad/wolfpad/pkg/ports"
	"google.golang.org/genai"
)

// DefaultModel is used when neither the request nor the options name a model.
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned when the completer is built without a credential.
var ErrMissingAPIKey = errors.New("gemini: API key is required")

// Completer sends prompts to the Gemini API. The underlying client is
// immutable after construction and shared by all requests.
type Completer struct {
	client *genai.Client
	model  string
}

var _ ports.Completer = (*Completer)(nil)

type options struct {
	model   string
	baseURL string
}

// Option configures the Completer.
type Option func(*options)

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

// WithBaseURL points the client at a different API endpoint (proxies, tests).
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// New creates a Completer authenticated with apiKey.
func New(ctx context.Context, apiKey string, opts ...Option) (*Completer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{model: DefaultModel}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if o.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Completer{client: client, model: o.model}, nil
}

// Complete generates a completion for req. When req.Schema is set the model is
// asked for JSON of that shape.
func (c *Completer) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.SystemInstruction)},
		}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = ToSchema(req.Schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate content failed: %w", err)
	}
	return resp.Text(), nil
}

// Model returns the default model name.
func (c *Completer) Model() string {
	return c.model
}

var schemaTypes = map[domain.SchemaType]genai.Type{
	domain.TypeObject:  genai.TypeObject,
	domain.TypeArray:   genai.TypeArray,
	domain.TypeString:  genai.TypeString,
	domain.TypeInteger: genai.TypeInteger,
	domain.TypeNumber:  genai.TypeNumber,
	domain.TypeBoolean: genai.TypeBoolean,
}

// ToSchema converts a response-shape constraint to the Gemini representation.
func ToSchema(s *domain.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       ToSchema(s.Items),
	}
	if s.Type == domain.TypeString && len(s.Enum) > 0 {
		out.Format = "enum"
	}
	if s.Nullable {
		nullable := true
		out.Nullable = &nullable
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = ToSchema(prop)
		}
	}
	return out
}
