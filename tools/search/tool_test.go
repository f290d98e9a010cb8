package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
)

func startSearchServer(t *testing.T, port int, results *searchResponse) *http.Server {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("X-API-KEY"); key == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode(results)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/search", handler)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	l, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		t.Fatalf("start search server failed: %v", err)
	}
	go func() {
		if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("search server failed: %v", err)
		}
	}()
	return srv
}

func TestSearch(t *testing.T) {
	mockPort := 8091
	mockURL := fmt.Sprintf("http://localhost:%d", mockPort)
	mockResult := searchResponse{
		Organic: []organicItem{
			{Title: "Tokyo travel guide", Link: "https://example.com/tokyo", Snippet: "What to see in Tokyo.", Position: 1},
			{Title: "", Link: "https://example.com/skipped", Snippet: "Missing title."},
			{Title: "Tokyo in autumn", Link: "https://example.com/autumn", Snippet: "Autumn colors.", Position: 2},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startSearchServer(t, mockPort, &mockResult)
	defer srv.Shutdown(ctx)
	tool := New(WithBaseURL(mockURL), WithAPIKey("test-key"))
	out := new(Output)
	if err := tool.Run(ctx, NewInput("tokyo travel"), out); err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("Expect 2 results, but got %d", len(out.Results))
	}
	if title := out.Results[0].Title; title != "Tokyo travel guide" {
		t.Errorf("Expect title Tokyo travel guide, but got %s", title)
	}
	if query := out.Results[0].Query; query != "tokyo travel" {
		t.Errorf("Expect query tokyo travel, but got %s", query)
	}
}

func TestSearchMaxResults(t *testing.T) {
	mockPort := 8092
	mockURL := fmt.Sprintf("http://localhost:%d", mockPort)
	mockResult := searchResponse{
		Organic: []organicItem{
			{Title: "a", Link: "https://example.com/a"},
			{Title: "b", Link: "https://example.com/b"},
			{Title: "c", Link: "https://example.com/c"},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startSearchServer(t, mockPort, &mockResult)
	defer srv.Shutdown(ctx)
	tool := New(WithBaseURL(mockURL), WithAPIKey("test-key"), WithMaxResults(2))
	out := new(Output)
	if err := tool.Run(ctx, NewInput("query"), out); err != nil {
		t.Fatalf("Error running search: %v", err)
	}
	if len(out.Results) != 2 {
		t.Errorf("Expect 2 results, but got %d", len(out.Results))
	}
}

func TestSearchMissingKey(t *testing.T) {
	mockPort := 8093
	mockURL := fmt.Sprintf("http://localhost:%d", mockPort)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := startSearchServer(t, mockPort, &searchResponse{})
	defer srv.Shutdown(ctx)
	tool := New(WithBaseURL(mockURL))
	out := new(Output)
	if err := tool.Run(ctx, NewInput("query"), out); err == nil {
		t.Error("Expect error without api key, but got nil")
	}
}

func TestSearchMissingQueries(t *testing.T) {
	tool := New()
	out := new(Output)
	if err := tool.Run(context.Background(), &Input{}, out); err == nil {
		t.Error("Expect error without queries, but got nil")
	}
}

func TestOutputText(t *testing.T) {
	out := Output{Results: []ResultItem{
		{Title: "Summer Festival Week", Content: "Concert and festival season."},
	}}
	text := out.Text()
	expect := "summer festival week\nconcert and festival season.\n"
	if text != expect {
		t.Errorf("Expect %q, but got %q", expect, text)
	}
}
