package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/eslsoft/eqtrainer/internal/entity"
)

//go:embed scenarios.yaml
var builtinFS embed.FS

type scenarioFile struct {
	Scenarios []entity.Scenario `yaml:"scenarios"`
}

// Load parses the bundled scenario set. The result is read-only data; callers
// must not mutate it.
func Load() ([]entity.Scenario, error) {
	raw, err := builtinFS.ReadFile("scenarios.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse builtin scenarios: %w", err)
	}
	for i, s := range file.Scenarios {
		if s.ID == "" || s.Category == "" || s.Title == "" {
			return nil, fmt.Errorf("builtin scenario %d: %w", i, entity.ErrInvalidScenario)
		}
	}
	return file.Scenarios, nil
}
