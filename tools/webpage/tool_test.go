package webpage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
)

const mockPage = `<!DOCTYPE html>
<html>
<head>
  <title>Tokyo Guide</title>
  <meta name="description" content="A guide to Tokyo.">
  <meta name="author" content="A. Writer">
</head>
<body>
  <nav>menu</nav>
  <main>
    <h1>Tokyo</h1>
    <p>Visit the <a href="/temples">temples</a> early in the morning.</p>
  </main>
  <footer>footer</footer>
</body>
</html>`

func startPageServer(t *testing.T, port int) *http.Server {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, mockPage)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/guide", handler)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	l, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		t.Fatalf("start page server failed: %v", err)
	}
	go func() {
		if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("page server failed: %v", err)
		}
	}()
	return srv
}

func TestWebpage(t *testing.T) {
	mockPort := 8097
	mockURL := fmt.Sprintf("http://localhost:%d/guide", mockPort)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startPageServer(t, mockPort)
	defer srv.Shutdown(ctx)
	tool := New()
	out := new(Output)
	if err := tool.Run(ctx, NewInput(mockURL, true), out); err != nil {
		t.Fatalf("Error running webpage tool: %v", err)
	}
	if !strings.Contains(out.Content, "Tokyo") {
		t.Errorf("Expect content to mention Tokyo, but got %q", out.Content)
	}
	if strings.Contains(out.Content, "menu") {
		t.Errorf("Expect nav content removed, but got %q", out.Content)
	}
	if out.Metadata == nil {
		t.Fatal("Expect metadata, but got nil")
	}
	if out.Metadata.Title != "Tokyo Guide" {
		t.Errorf("Expect title Tokyo Guide, but got %s", out.Metadata.Title)
	}
	if out.Metadata.Description != "A guide to Tokyo." {
		t.Errorf("Expect description A guide to Tokyo., but got %s", out.Metadata.Description)
	}
}

func TestWebpageStripsLinks(t *testing.T) {
	mockPort := 8098
	mockURL := fmt.Sprintf("http://localhost:%d/guide", mockPort)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startPageServer(t, mockPort)
	defer srv.Shutdown(ctx)
	tool := New()
	out := new(Output)
	if err := tool.Run(ctx, NewInput(mockURL, false), out); err != nil {
		t.Fatalf("Error running webpage tool: %v", err)
	}
	if strings.Contains(out.Content, "](") {
		t.Errorf("Expect markdown links stripped, but got %q", out.Content)
	}
	if !strings.Contains(out.Content, "temples") {
		t.Errorf("Expect link text kept, but got %q", out.Content)
	}
}

func TestWebpageInvalidURL(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), NewInput("not-a-url", false), out); err == nil {
		t.Error("Expect error for invalid url, but got nil")
	}
}

func TestStripMarkdownLinks(t *testing.T) {
	got := stripMarkdownLinks("see [the temples](https://example.com) today")
	expect := "see the temples today"
	if got != expect {
		t.Errorf("Expect %q, but got %q", expect, got)
	}
}
