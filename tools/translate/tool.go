package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
)

// Input schema for the TranslateTool.
type Input struct {
	schema.Base
	// Text to translate.
	Text string `json:"text" jsonschema:"title=text,description=Text to translate." validate:"required"`
	// Source language code, e.g. en.
	Source string `json:"source,omitempty" jsonschema:"title=source,description=Source language code,default=auto"`
	// Target language code, e.g. es.
	Target string `json:"target" jsonschema:"title=target,description=Target language code." validate:"required"`
}

func NewInput(text, source, target string) *Input {
	if source == "" {
		source = "auto"
	}
	return &Input{
		Text:   text,
		Source: source,
		Target: target,
	}
}

// Output Schema for the output of the TranslateTool.
type Output struct {
	schema.Base
	// TranslatedText is the translation result.
	TranslatedText string `json:"translated_text,omitempty" jsonschema:"title=translated_text,description=The translation result."`
}

func (o Output) Title() string {
	return "Translation"
}

func (o Output) Info() string {
	return o.TranslatedText
}

// translateRequest is the wire format of the translation endpoint
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type Config struct {
	tools.Config
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Tool translates text through a LibreTranslate compatible endpoint.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("TranslateTool")
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Available reports whether an endpoint is configured.
func (t *Tool) Available() bool {
	return t.baseURL != ""
}

// Run runs the TranslateTool synchronously with the given parameters
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if err := t.run(ctx, input, output); err != nil {
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	if fn := t.EndHook(); fn != nil {
		fn(ctx, t, input, output)
	}
	return nil
}

func (t *Tool) run(ctx context.Context, input *Input, output *Output) error {
	if input.Text == "" || input.Target == "" {
		return errors.New("missing text or target language")
	}
	if t.baseURL == "" {
		return errors.New("no translation endpoint configured")
	}
	source := input.Source
	if source == "" {
		source = "auto"
	}
	payload := translateRequest{
		Q:      input.Text,
		Source: source,
		Target: input.Target,
		Format: "text",
		APIKey: t.apiKey,
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(&payload); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/translate", t.baseURL), buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("translate request failed with status: %s", resp.Status)
	}
	res := new(translateResponse)
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return err
	}
	if res.TranslatedText == "" {
		return errors.New("empty translation response")
	}
	output.TranslatedText = res.TranslatedText
	return nil
}

// RunOrchestration executes the tool with untyped input for orchestration
func (t *Tool) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, errors.New("invalid tool input schema")
	}
	out := new(Output)
	if err := t.Run(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Translate is a convenience wrapper returning just the translated text.
func (t *Tool) Translate(ctx context.Context, text, source, target string) (string, error) {
	out := new(Output)
	if err := t.Run(ctx, NewInput(text, source, target), out); err != nil {
		return "", err
	}
	return out.TranslatedText, nil
}
