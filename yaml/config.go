// Package yaml loads jobscrape configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/akmandhania/jobscrape"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path on top of jobscrape.DefaultConfig
// and validates the result. Keys absent from the file keep their defaults;
// unknown keys are rejected.
func LoadConfig(path string) (jobscrape.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return jobscrape.Config{}, &jobscrape.Error{Code: jobscrape.ECONFIG, Message: "read config: " + err.Error(), Err: err}
	}
	return ParseConfig(bytes.NewReader(b))
}

// ParseConfig decodes YAML from r on top of jobscrape.DefaultConfig and
// validates the result. An empty document yields the defaults.
func ParseConfig(r io.Reader) (jobscrape.Config, error) {
	cfg := jobscrape.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return jobscrape.Config{}, &jobscrape.Error{Code: jobscrape.ECONFIG, Message: "parse config: " + err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return jobscrape.Config{}, err
	}
	return cfg, nil
}
