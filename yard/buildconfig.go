package yard

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// BuildConfigFilename is the optional in-repo build manifest, looked up at
// the root of the materialised working tree. Manifest values override the
// project's stored configuration for that build.
const BuildConfigFilename = ".slipway.yml"

// DefaultArtifactsDir is the workspace-relative directory harvested after
// the terminal phase.
const DefaultArtifactsDir = "artifacts"

// Phase is one named command executed inside the build container.
type Phase struct {
	Name    string `json:"name"`
	Run     string `json:"run"`
	Workdir string `json:"workdir,omitempty"`
}

// Validate checks that the phase is runnable.
func (p Phase) Validate() error {
	if strings.TrimSpace(p.Run) == "" {
		return fmt.Errorf("phase %q has no command", p.Name)
	}
	return nil
}

// BuildConfig is the parsed build manifest.
type BuildConfig struct {
	Image     string        `json:"image,omitempty"`
	Phases    []PhaseSource `json:"phases,omitempty"`
	Artifacts string        `json:"artifacts,omitempty"`
}

// PhaseSource is a union type: either a bare command string, from which a
// phase name is derived, or an inline Phase object. In YAML/JSON, a string
// value becomes a command and an object value an inline phase.
type PhaseSource struct {
	Command string `json:"-"`
	Phase   *Phase `json:"-"`
}

func (s PhaseSource) MarshalJSON() ([]byte, error) {
	if s.Phase != nil {
		return json.Marshal(*s.Phase)
	}
	return json.Marshal(s.Command)
}

func (s *PhaseSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Command = str
		s.Phase = nil
		return nil
	}

	var phase Phase
	if err := json.Unmarshal(data, &phase); err == nil {
		s.Phase = &phase
		return nil
	}

	return fmt.Errorf("phase entry must be a string (command) or object (inline phase)")
}

// UnmarshalYAML implements yaml.BytesUnmarshaler so the union form works
// with the YAML decoder as well.
func (s *PhaseSource) UnmarshalYAML(data []byte) error {
	var str string
	if err := yaml.Unmarshal(data, &str); err == nil {
		s.Command = str
		s.Phase = nil
		return nil
	}

	var phase Phase
	if err := yaml.Unmarshal(data, &phase); err == nil {
		s.Phase = &phase
		return nil
	}

	return fmt.Errorf("phase entry must be a string (command) or object (inline phase)")
}

// Resolve returns the concrete phase for the entry. Unnamed command entries
// take the command itself as the step name, truncated for readability.
func (s PhaseSource) Resolve() Phase {
	if s.Phase != nil {
		return *s.Phase
	}
	return Phase{
		Name: truncatePhaseName(s.Command),
		Run:  s.Command,
	}
}

const maxPhaseNameLength = 60

func truncatePhaseName(command string) string {
	name := strings.TrimSpace(command)
	if len(name) > maxPhaseNameLength {
		return name[:maxPhaseNameLength]
	}
	return name
}

// ParseBuildConfig parses a build manifest. Every phase is validated; a
// manifest with no runnable phase is a user error.
func ParseBuildConfig(data []byte) (BuildConfig, error) {
	var config BuildConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BuildConfig{}, fmt.Errorf("parsing build manifest: %w", err)
	}

	for _, source := range config.Phases {
		if err := source.Resolve().Validate(); err != nil {
			return BuildConfig{}, fmt.Errorf("invalid build manifest: %w", err)
		}
	}

	return config, nil
}

// EffectivePhases resolves every phase entry in declaration order.
func (c BuildConfig) EffectivePhases() []Phase {
	phases := make([]Phase, len(c.Phases))
	for i, source := range c.Phases {
		phases[i] = source.Resolve()
	}
	return phases
}
