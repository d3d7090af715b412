package output

import "gopkg.in/yaml.v3"

// YAMLFormatter renders the report as YAML, in the same shape the loaders read
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	return yaml.Marshal(report)
}
