// Package scenario loads flat plant configurations from disk. Scenario
// files are the loosely-typed mapping the costing adapter consumes; the
// loader tolerates YAML, HJSON and sloppy JSON (comments, trailing commas)
// so hand-edited design points survive round-trips.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Scenario is a named flat configuration.
type Scenario struct {
	Name   string
	Config map[string]interface{}
}

// Load reads one scenario file, dispatching on extension.
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var config map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		config, err = parseYAML(raw)
	case ".hjson":
		config, err = parseHJSON(raw)
	case ".json":
		config, err = parseJSON(raw)
	default:
		return Scenario{}, fmt.Errorf("unsupported scenario format %q", filepath.Ext(path))
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return Scenario{Name: name, Config: config}, nil
}

// LoadDir reads every scenario file in a directory, sorted by name, for
// batch sweeps. Non-scenario files are skipped.
func LoadDir(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var scenarios []Scenario
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".hjson", ".json":
			s, err := Load(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			scenarios = append(scenarios, s)
		}
	}

	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios, nil
}

// parseYAML decodes through map[interface{}]interface{} because yaml.v2
// keys are not guaranteed to be strings.
func parseYAML(raw []byte) (map[string]interface{}, error) {
	var yi map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &yi); err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(yi))
	for k, v := range yi {
		out[fmt.Sprintf("%v", k)] = v
	}
	return normalizeKeys(out), nil
}

func parseHJSON(raw []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := hjson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return normalizeKeys(out), nil
}

// parseJSON tries strict JSON first, then repairs common hand-edit damage
// (comments, single quotes, trailing commas) before giving up.
func parseJSON(raw []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err == nil {
		return normalizeKeys(out), nil
	}

	repaired, err := jsonrepair.RepairJSON(string(raw))
	if err != nil {
		return nil, fmt.Errorf("json repair failed: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return nil, err
	}
	return normalizeKeys(out), nil
}

// normalizeKeys coerces numeric json.Number values and non-string keyed
// sub-maps into the plain shapes the adapter expects.
func normalizeKeys(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case json.Number:
			if f, err := val.Float64(); err == nil {
				out[k] = f
				continue
			}
			out[k] = val.String()
		case int:
			out[k] = float64(val)
		default:
			out[k] = v
		}
	}
	return out
}
