package travel

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/voyagent/voyagent/components/systemprompt"
	"github.com/voyagent/voyagent/components/systemprompt/cot"
)

//go:embed personas.yaml
var personasYAML []byte

// Persona describes an agent role loaded from the embedded persona file.
type Persona struct {
	Role      string   `yaml:"role"`
	Goal      string   `yaml:"goal"`
	Backstory string   `yaml:"backstory"`
	Steps     []string `yaml:"steps"`
}

var (
	personasOnce sync.Once
	personasMap  map[string]Persona
	personasErr  error
)

func persona(name string) (Persona, error) {
	personasOnce.Do(func() {
		personasMap = make(map[string]Persona)
		personasErr = yaml.Unmarshal(personasYAML, &personasMap)
	})
	if personasErr != nil {
		return Persona{}, fmt.Errorf("load personas: %w", personasErr)
	}
	p, ok := personasMap[name]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona %q", name)
	}
	return p, nil
}

// Generator builds the system prompt generator for a persona.
func (p Persona) Generator(providers ...systemprompt.ContextProvider) systemprompt.Generator {
	background := []string{
		fmt.Sprintf("- You are a %s.", p.Role),
		fmt.Sprintf("- Your goal: %s", p.Goal),
		fmt.Sprintf("- %s", p.Backstory),
	}
	steps := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, fmt.Sprintf("- %s", s))
	}
	return cot.New(
		cot.WithBackground(background),
		cot.WithSteps(steps),
		cot.WithContextProviders(providers...),
	)
}
