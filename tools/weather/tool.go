package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/voyagent/voyagent/schema"
	"github.com/voyagent/voyagent/tools"
)

const DefaultBaseURL = "https://api.openweathermap.org"

// Category is a coarse weather bucket derived from the condition code.
type Category = string

const (
	StormCategory   Category = "storm"
	RainCategory    Category = "rain"
	SnowCategory    Category = "snow"
	ClearCategory   Category = "clear"
	UnknownCategory Category = "unknown"
)

// Input schema for the WeatherTool.
type Input struct {
	schema.Base
	// City name to look up current conditions for.
	City string `json:"city" jsonschema:"title=city,description=City name to look up current conditions for." validate:"required"`
}

func NewInput(city string) *Input {
	return &Input{City: city}
}

// Conditions describes the current weather of a city.
type Conditions struct {
	// ID is the provider condition code.
	ID int `json:"id,omitempty" jsonschema:"title=id,description=The provider condition code."`
	// Main is the condition group, e.g. Rain or Clear.
	Main string `json:"main,omitempty" jsonschema:"title=main,description=The condition group."`
	// Description is the human readable condition text.
	Description string `json:"description,omitempty" jsonschema:"title=description,description=The human readable condition text."`
	// Temperature in the configured units.
	Temperature float64 `json:"temperature,omitempty" jsonschema:"title=temperature,description=The temperature in the configured units."`
	// Available reports whether live conditions could be fetched.
	Available bool `json:"available" jsonschema:"title=available,description=Whether live conditions could be fetched."`
}

// Category buckets the condition code for crowd estimation.
func (c Conditions) Category() Category {
	if !c.Available {
		return UnknownCategory
	}
	switch {
	case c.ID >= 200 && c.ID < 300:
		return StormCategory
	case c.ID >= 300 && c.ID < 600:
		return RainCategory
	case c.ID >= 600 && c.ID < 700:
		return SnowCategory
	case c.ID >= 700:
		// Atmosphere and cloud codes count as clear for crowd purposes.
		return ClearCategory
	}
	return UnknownCategory
}

// Output Schema for the output of the WeatherTool.
type Output struct {
	schema.Base
	// City the conditions belong to.
	City string `json:"city,omitempty" jsonschema:"title=city,description=The city the conditions belong to."`
	// Conditions of the city right now.
	Conditions Conditions `json:"conditions" jsonschema:"title=conditions,description=The current conditions of the city."`
}

func (o Output) Title() string {
	return "Current Weather"
}

func (o Output) Info() string {
	if !o.Conditions.Available {
		return fmt.Sprintf("No live weather data available for %s.", o.City)
	}
	return fmt.Sprintf("%s: %s (%s)", o.City, o.Conditions.Main, o.Conditions.Description)
}

// weatherResponse is the wire format of the current weather endpoint
type weatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

type Config struct {
	tools.Config
	baseURL    string
	apiKey     string
	units      string
	httpClient *http.Client
}

// Tool fetches current weather conditions for a city.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("WeatherTool")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.units == "" {
		ret.units = "metric"
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run runs the WeatherTool synchronously with the given parameters.
// A missing credential is not an error: the output reports unavailable conditions instead.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, input)
	}
	if input.City == "" {
		err := errors.New("missing city")
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		return err
	}
	output.City = input.City
	if t.apiKey == "" {
		output.Conditions = Conditions{}
		if fn := t.EndHook(); fn != nil {
			fn(ctx, t, input, output)
		}
		return nil
	}
	cond, err := t.fetchConditions(ctx, input.City)
	if err != nil {
		output.Conditions = Conditions{}
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, input, err)
		}
		if fn := t.EndHook(); fn != nil {
			fn(ctx, t, input, output)
		}
		return nil
	}
	output.Conditions = cond
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

// CurrentConditions returns the current conditions of a city.
// Used by the crowd estimator to pick a weather factor.
func (t *Tool) CurrentConditions(ctx context.Context, city string) (Conditions, error) {
	out := new(Output)
	if err := t.Run(ctx, NewInput(city), out); err != nil {
		return Conditions{}, err
	}
	return out.Conditions, nil
}

func (t *Tool) fetchConditions(ctx context.Context, city string) (Conditions, error) {
	var cond Conditions
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", t.apiKey)
	values.Set("units", t.units)
	link := fmt.Sprintf("%s/data/2.5/weather?%s", t.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return cond, err
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return cond, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return cond, fmt.Errorf("weather request failed with status: %s", resp.Status)
	}
	res := new(weatherResponse)
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return cond, err
	}
	if len(res.Weather) == 0 {
		return cond, errors.New("empty weather response")
	}
	cond.ID = res.Weather[0].ID
	cond.Main = res.Weather[0].Main
	cond.Description = res.Weather[0].Description
	cond.Temperature = res.Main.Temp
	cond.Available = true
	return cond, nil
}
