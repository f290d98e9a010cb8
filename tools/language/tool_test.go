package language

import (
	"context"
	"errors"
	"testing"
)

type translatorFunc func(ctx context.Context, text, source, target string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

type searcherFunc func(ctx context.Context, query string) (string, error)

func (f searcherFunc) SearchText(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

func TestLanguageLiveTranslation(t *testing.T) {
	tool := New(
		WithTranslator(translatorFunc(func(ctx context.Context, text, source, target string) (string, error) {
			return "hola", nil
		})),
	)
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("hello", "en", "es", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.TranslatedText != "hola" {
		t.Errorf("Expect hola, but got %s", out.TranslatedText)
	}
	if out.Confidence != 0.9 {
		t.Errorf("Expect confidence 0.9, but got %f", out.Confidence)
	}
	if out.Fallback {
		t.Error("Expect no fallback for a live translation")
	}
}

func TestLanguageSearchFallback(t *testing.T) {
	tool := New(
		WithTranslator(translatorFunc(func(ctx context.Context, text, source, target string) (string, error) {
			return "", errors.New("translate down")
		})),
		WithSearcher(searcherFunc(func(ctx context.Context, query string) (string, error) {
			return "Some page\nTranslation: hola amigo\nmore text", nil
		})),
	)
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("hello friend", "en", "es", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.TranslatedText != "hola amigo" {
		t.Errorf("Expect hola amigo, but got %s", out.TranslatedText)
	}
	if out.Confidence != 0.6 {
		t.Errorf("Expect confidence 0.6, but got %f", out.Confidence)
	}
	if !out.Fallback {
		t.Error("Expect fallback set for an extracted translation")
	}
}

func TestLanguageEchoWithoutSources(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("hello there", "en", "es", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.TranslatedText != "hello there" {
		t.Errorf("Expect verbatim echo, but got %s", out.TranslatedText)
	}
	if out.Confidence != 0 {
		t.Errorf("Expect confidence exactly 0, but got %f", out.Confidence)
	}
	if !out.Fallback {
		t.Error("Expect fallback set for an echo")
	}
}

func TestLanguageMissingTarget(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), &Input{Text: "hello"}, out); err == nil {
		t.Error("Expect error without target language, but got nil")
	}
}

func TestEmergencyPhraseFallback(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("hello", "en", "de", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.EmergencyPhrases["help"] != "Help!" {
		t.Errorf("Expect English fallback phrases for de, but got %q", out.EmergencyPhrases["help"])
	}
	out = new(Output)
	if err := tool.Run(context.Background(), NewInput("hello", "en", "es", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.EmergencyPhrases["help"] != "¡Ayuda!" {
		t.Errorf("Expect Spanish phrases for es, but got %q", out.EmergencyPhrases["help"])
	}
}

func TestExtractTranslation(t *testing.T) {
	cases := []struct {
		text   string
		expect string
	}{
		{"Translation: hola", "hola"},
		{"how to translate hello: say hola", "say hola"},
		{"no marker here", ""},
		{"translation without colon", ""},
	}
	for _, c := range cases {
		if got := ExtractTranslation(c.text); got != c.expect {
			t.Errorf("Expect %q for %q, but got %q", c.expect, c.text, got)
		}
	}
}

func TestClassifyFormality(t *testing.T) {
	cases := []struct {
		text   string
		expect Formality
	}{
		{"Could you please help me, thank you", FormalRegister},
		{"hey that's awesome yeah", InformalRegister},
		{"where is the station", NeutralRegister},
		{"hey, please", NeutralRegister},
	}
	for _, c := range cases {
		if got := ClassifyFormality(c.text); got != c.expect {
			t.Errorf("Expect %s for %q, but got %s", c.expect, c.text, got)
		}
	}
}

func TestPronunciationDifficulty(t *testing.T) {
	if got := PronunciationDifficulty("hola"); got != LowDifficulty {
		t.Errorf("Expect low, but got %s", got)
	}
	if got := PronunciationDifficulty("una frase un poco mas larga"); got != MediumDifficulty {
		t.Errorf("Expect medium, but got %s", got)
	}
	if got := PronunciationDifficulty("una frase realmente muy larga que sigue y sigue sin parar nunca"); got != HighDifficulty {
		t.Errorf("Expect high, but got %s", got)
	}
}

func TestCulturalTipAndNote(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("hello", "en", "fr", BusinessContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.CulturalTip == "" {
		t.Error("Expect a cultural tip for business fr")
	}
	out = new(Output)
	if err := tool.Run(context.Background(), NewInput("hello", "en", "ja", TravelContext), out); err != nil {
		t.Fatalf("Error running language tool: %v", err)
	}
	if out.CulturalNote == "" {
		t.Error("Expect a cultural note for ja")
	}
}
