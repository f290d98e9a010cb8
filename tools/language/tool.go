package language

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
)

// Translator translates text between languages.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// TextSearcher returns flattened search result text for a query.
type TextSearcher interface {
	SearchText(ctx context.Context, query string) (string, error)
}

// Input schema for the LanguageTool.
type Input struct {
	schema.Base
	// Text to translate and annotate.
	Text string `json:"text" jsonschema:"title=text,description=Text to translate and annotate." validate:"required"`
	// Source language code, e.g. en.
	Source string `json:"source,omitempty" jsonschema:"title=source,description=Source language code,default=auto"`
	// Target language code, e.g. es.
	Target string `json:"target" jsonschema:"title=target,description=Target language code." validate:"required"`
	// Context travel, business or casual.
	Context UsageContext `json:"context,omitempty" jsonschema:"title=context,enum=travel,enum=business,enum=casual,default=travel,description=Usage context of the text."`
}

func NewInput(text, source, target string, usage UsageContext) *Input {
	if usage == "" {
		usage = TravelContext
	}
	return &Input{
		Text:    text,
		Source:  source,
		Target:  target,
		Context: usage,
	}
}

// Output Schema for the output of the LanguageTool.
type Output struct {
	schema.Base
	// OriginalText as given.
	OriginalText string `json:"original_text" jsonschema:"title=original_text,description=The original text."`
	// TranslatedText, or the original when no translation was possible.
	TranslatedText string `json:"translated_text" jsonschema:"title=translated_text,description=The translated text."`
	// Confidence of the translation: 0.9 live, 0.6 extracted, 0 echo.
	Confidence float64 `json:"confidence" jsonschema:"title=confidence,description=Confidence of the translation."`
	// Formality register of the original text.
	Formality Formality `json:"formality" jsonschema:"title=formality,description=Register of the original text."`
	// CulturalTip for the usage context and target language.
	CulturalTip string `json:"cultural_tip,omitempty" jsonschema:"title=cultural_tip,description=Usage guidance for the target language."`
	// EmergencyPhrases in the target language, English fallback.
	EmergencyPhrases map[string]string `json:"emergency_phrases,omitempty" jsonschema:"title=emergency_phrases,description=Emergency phrases in the target language."`
	// PronunciationDifficulty of the translated text.
	PronunciationDifficulty Difficulty `json:"pronunciation_difficulty" jsonschema:"title=pronunciation_difficulty,description=How hard the translated text is to pronounce."`
	// CulturalNote for the target language, when one exists.
	CulturalNote string `json:"cultural_note,omitempty" jsonschema:"title=cultural_note,description=Cultural note for the target language."`
	// Fallback marks a degraded translation.
	Fallback bool `json:"fallback,omitempty" jsonschema:"title=fallback,description=Whether the translation is degraded."`
	// Error holds the failure message when Fallback is set.
	Error string `json:"error,omitempty" jsonschema:"title=error,description=Failure message."`
}

func (o Output) Title() string {
	return "Language Briefing"
}

func (o Output) Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Translation (confidence %.1f): %s\n", o.Confidence, o.TranslatedText)
	fmt.Fprintf(&sb, "Register: %s\n", o.Formality)
	if o.CulturalTip != "" {
		fmt.Fprintf(&sb, "Tip: %s\n", o.CulturalTip)
	}
	if o.CulturalNote != "" {
		fmt.Fprintf(&sb, "Note: %s\n", o.CulturalNote)
	}
	for k, v := range o.EmergencyPhrases {
		fmt.Fprintf(&sb, "Emergency (%s): %s\n", k, v)
	}
	return sb.String()
}

type Option func(*Tool)

func WithTranslator(tr Translator) Option {
	return func(t *Tool) {
		t.translator = tr
	}
}

func WithSearcher(s TextSearcher) Option {
	return func(t *Tool) {
		t.searcher = s
	}
}

func WithToolOptions(opts ...tools.Option) Option {
	return func(t *Tool) {
		for _, opt := range opts {
			opt(&t.Config)
		}
	}
}

// Tool translates text and annotates it with cultural guidance.
type Tool struct {
	tools.Config
	translator Translator
	searcher   TextSearcher
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.Title() == "" {
		ret.SetTitle("LanguageTool")
	}
	return ret
}

// Run runs the LanguageTool synchronously with the given parameters.
// Enrichment failures degrade individual fields instead of failing the run.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if input.Text == "" || input.Target == "" {
		err := errors.New("missing text or target language")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	output.OriginalText = input.Text
	t.translate(ctx, input, output)
	output.Formality = ClassifyFormality(input.Text)
	usage := input.Context
	if usage == "" {
		usage = TravelContext
	}
	if tips, ok := contextTips[usage]; ok {
		output.CulturalTip = tips[strings.ToLower(input.Target)]
	}
	if phrases, ok := emergencyPhrases[strings.ToLower(input.Target)]; ok {
		output.EmergencyPhrases = phrases
	} else {
		output.EmergencyPhrases = emergencyPhrases["en"]
	}
	output.PronunciationDifficulty = PronunciationDifficulty(output.TranslatedText)
	output.CulturalNote = culturalNotes[strings.ToLower(input.Target)]
	if fn := t.EndHook(); fn != nil {
		fn(ctx, t, input, output)
	}
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

// translate fills the translation fields, degrading from live translation
// to search extraction to a verbatim echo.
func (t *Tool) translate(ctx context.Context, input *Input, output *Output) {
	if t.translator != nil {
		if text, err := t.translator.Translate(ctx, input.Text, input.Source, input.Target); err == nil && text != "" {
			output.TranslatedText = text
			output.Confidence = 0.9
			return
		} else if err != nil {
			output.Error = err.Error()
		}
	}
	if t.searcher != nil {
		query := fmt.Sprintf("translate %q to %s", input.Text, input.Target)
		if text, err := t.searcher.SearchText(ctx, query); err == nil {
			if extracted := ExtractTranslation(text); extracted != "" {
				output.TranslatedText = extracted
				output.Confidence = 0.6
				output.Fallback = true
				return
			}
		} else if output.Error == "" {
			output.Error = err.Error()
		}
	}
	output.TranslatedText = input.Text
	output.Confidence = 0
	output.Fallback = true
}

// ExtractTranslation scans search text for a line that looks like a
// translation, e.g. "Translation: hola". Returns "" when none is found.
func ExtractTranslation(text string) string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "translation") && !strings.Contains(lower, "translate") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 || idx+1 >= len(line) {
			continue
		}
		if candidate := strings.TrimSpace(line[idx+1:]); candidate != "" {
			return candidate
		}
	}
	return ""
}

// ClassifyFormality grades the register of a text by keyword counts.
func ClassifyFormality(text string) Formality {
	lower := strings.ToLower(text)
	var formal, informal int
	for _, kw := range formalKeywords {
		formal += strings.Count(lower, kw)
	}
	for _, kw := range informalKeywords {
		informal += strings.Count(lower, kw)
	}
	switch {
	case formal > informal:
		return FormalRegister
	case informal > formal:
		return InformalRegister
	}
	return NeutralRegister
}

// PronunciationDifficulty grades a phrase by length.
func PronunciationDifficulty(text string) Difficulty {
	switch l := len(text); {
	case l > 50:
		return HighDifficulty
	case l > 20:
		return MediumDifficulty
	}
	return LowDifficulty
}
