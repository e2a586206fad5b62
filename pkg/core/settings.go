package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadSettings loads a flat YAML mapping into the string map that sim
// factories and Config.Apply style parsers accept. Scalars are formatted
// with fmt; null values are dropped.
func ReadSettings(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make(map[string]string, len(doc))
	for k, v := range doc {
		if v == nil {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out, nil
}
