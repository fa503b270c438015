package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlParser implements koanf.Parser on top of yaml.v3.
type yamlParser struct{}

// YAMLParser returns a koanf parser for YAML documents.
func YAMLParser() *yamlParser {
	return &yamlParser{}
}

// Unmarshal parses YAML bytes into a nested map.
func (p *yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeYAML(out).(map[string]interface{}), nil
}

// Marshal renders a nested map as YAML.
func (p *yamlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}

// normalizeYAML converts any map[interface{}]interface{} left by yaml.v3
// (non-string keys) into map[string]interface{} so matching sees the same
// shapes as with JSON.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalizeYAML(item)
		}
		return val
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return v
	}
}
