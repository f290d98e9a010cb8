package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
)

func startTranslateServer(t *testing.T, port int, translated string) *http.Server {
	handler := func(w http.ResponseWriter, r *http.Request) {
		req := new(translateRequest)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil || req.Q == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: translated})
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", handler)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	l, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		t.Fatalf("start translate server failed: %v", err)
	}
	go func() {
		if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("translate server failed: %v", err)
		}
	}()
	return srv
}

func TestTranslate(t *testing.T) {
	mockPort := 8096
	mockURL := fmt.Sprintf("http://localhost:%d", mockPort)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startTranslateServer(t, mockPort, "hola")
	defer srv.Shutdown(ctx)
	tool := New(WithBaseURL(mockURL))
	text, err := tool.Translate(ctx, "hello", "en", "es")
	if err != nil {
		t.Fatalf("Error running translate: %v", err)
	}
	if text != "hola" {
		t.Errorf("Expect hola, but got %s", text)
	}
}

func TestTranslateWithoutEndpoint(t *testing.T) {
	tool := New()
	if _, err := tool.Translate(context.Background(), "hello", "en", "es"); err == nil {
		t.Error("Expect error without endpoint, but got nil")
	}
}

func TestTranslateMissingTarget(t *testing.T) {
	tool := New(WithBaseURL("http://localhost:1"))
	out := new(Output)
	if err := tool.Run(context.Background(), &Input{Text: "hello"}, out); err == nil {
		t.Error("Expect error without target language, but got nil")
	}
}
