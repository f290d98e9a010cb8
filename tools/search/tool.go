package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
)

const DefaultBaseURL = "https://google.serper.dev"

// Input Schema for input to a tool for searching for information, news, references, and other content.
// Returns a list of search results with a short description or content snippet and URLs for further exploration
type Input struct {
	schema.Base
	// Queries list of search queries.
	Queries []string `json:"queries" jsonschema:"title=queries,description=List of search queries." validate:"required"`
}

func NewInput(queries ...string) *Input {
	return &Input{
		Queries: queries,
	}
}

func (s Input) String() string {
	return schema.Stringify(&s)
}

// ResultItem represents a single search result item
type ResultItem struct {
	// URL The URL of the search result
	URL string `json:"url" jsonschema:"title=url,description=The URL of the search result" validate:"required,url"`
	// Title The title of the search result
	Title string `json:"title" jsonschema:"title=title,description=The title of the search result" validate:"required"`
	// Content The content snippet of the search result
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The content snippet of the search result"`
	// Query The query used to obtain this search result
	Query string `json:"query,omitempty" jsonschema:"title=query,description=The query used to obtain this search result"`
	// Position The rank of the result within its query response
	Position int `json:"position,omitempty" jsonschema:"title=position,description=The rank of the result within its query response"`
}

// organicItem is a single entry of the wire response organic list
type organicItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// searchResponse represents the entire response from the search API
type searchResponse struct {
	Organic []organicItem `json:"organic"`
}

// Output represents the output of the search tool.
type Output struct {
	schema.Base
	// Results List of search result items
	Results []ResultItem `json:"results,omitempty" jsonschema:"title=results,description=List of search result items"`
}

func (s Output) String() string {
	return schema.Stringify(&s)
}

func (s Output) Title() string {
	return "Search Results"
}

func (s Output) Info() string {
	var sb strings.Builder
	for _, item := range s.Results {
		sb.WriteString("- ")
		sb.WriteString(item.Title)
		sb.WriteString("\n  ")
		sb.WriteString(item.URL)
		if item.Content != "" {
			sb.WriteString("\n  ")
			sb.WriteString(item.Content)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Text flattens titles and snippets into a single lowercase blob for keyword scans.
func (s Output) Text() string {
	var sb strings.Builder
	for _, item := range s.Results {
		sb.WriteString(item.Title)
		sb.WriteString("\n")
		sb.WriteString(item.Content)
		sb.WriteString("\n")
	}
	return strings.ToLower(sb.String())
}

type Config struct {
	tools.Config
	baseURL    string
	apiKey     string
	country    string
	language   string
	maxResults int
	httpClient *http.Client
}

// Tool performs web searches based on the provided queries.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("SearchTool")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.maxResults == 0 {
		ret.maxResults = 10
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run runs the search tool synchronously with the given parameters
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if len(input.Queries) == 0 {
		err := errors.New("missing search queries")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	for _, query := range input.Queries {
		items, err := t.fetchSearchResults(ctx, query)
		if err != nil {
			if fn := t.ErrorHook(); fn != nil {
				fn(ctx, t, input, err)
			}
			return err
		}
		output.Results = append(output.Results, items...)
	}
	if len(output.Results) > t.maxResults {
		output.Results = output.Results[:t.maxResults]
	}
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

// SearchText runs a single query and returns the flattened result text.
// Used by analyzers that scan result snippets for keywords.
func (t *Tool) SearchText(ctx context.Context, query string) (string, error) {
	out := new(Output)
	if err := t.Run(ctx, NewInput(query), out); err != nil {
		return "", err
	}
	return out.Text(), nil
}

// fetchSearchResults queries the search API and returns the parsed results
func (t *Tool) fetchSearchResults(ctx context.Context, query string) ([]ResultItem, error) {
	payload := map[string]any{
		"q":   query,
		"num": t.maxResults,
	}
	if t.country != "" {
		payload["gl"] = t.country
	}
	if t.language != "" {
		payload["hl"] = t.language
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/search", t.baseURL), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("X-API-KEY", t.apiKey)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status: %s", resp.Status)
	}
	res := new(searchResponse)
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return nil, err
	}
	items := make([]ResultItem, 0, len(res.Organic))
	for _, v := range res.Organic {
		if v.Title == "" || v.Link == "" {
			continue
		}
		items = append(items, ResultItem{
			URL:      v.Link,
			Title:    v.Title,
			Content:  v.Snippet,
			Query:    query,
			Position: v.Position,
		})
	}
	return items, nil
}
