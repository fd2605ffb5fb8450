// Package config handles endpoint configuration loading for the example
// programs and CLI use of the OpenSearch client.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so credentials can be injected
// at runtime, or entirely from the environment via FromEnv.
//
// # Example Configuration
//
//	http:
//	  timeoutSeconds: 30
//
//	endpoints:
//	  - name: sentinel
//	    descriptionUrl: https://catalog.example.com/description.xml
//	    resultType: results
//	    auth:
//	      username: ${CATALOG_USER}
//	      password: ${CATALOG_PASSWORD}
//	  - name: landsat
//	    searchEndpoint: https://landsat.example.com/search
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	HTTP      HTTPConfig       `yaml:"http"`
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// HTTPConfig holds transport settings
type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// EndpointConfig describes one named OpenSearch endpoint
type EndpointConfig struct {
	Name           string     `yaml:"name"`
	DescriptionURL string     `yaml:"descriptionUrl"`
	SearchEndpoint string     `yaml:"searchEndpoint"`
	ResultType     string     `yaml:"resultType"`
	Auth           AuthConfig `yaml:"auth"`
}

// AuthConfig holds a basic-auth credential pair
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.TimeoutSeconds == 0 {
		c.HTTP.TimeoutSeconds = 30
	}
	for i := range c.Endpoints {
		if c.Endpoints[i].ResultType == "" {
			c.Endpoints[i].ResultType = "collection"
		}
	}
}

func (c *Config) validate() error {
	for _, ep := range c.Endpoints {
		if ep.Name == "" {
			return fmt.Errorf("endpoint without a name")
		}
		if ep.DescriptionURL == "" && ep.SearchEndpoint == "" {
			return fmt.Errorf("endpoint %q: descriptionUrl or searchEndpoint required", ep.Name)
		}
	}
	return nil
}

// Endpoint returns the named endpoint configuration.
func (c *Config) Endpoint(name string) (EndpointConfig, bool) {
	for _, ep := range c.Endpoints {
		if ep.Name == name {
			return ep, true
		}
	}
	return EndpointConfig{}, false
}

// EnvConfig is a single-endpoint configuration populated from the
// environment. Defaults are provided via struct tags.
type EnvConfig struct {
	// ENV: OPENSEARCH_DESCRIPTION_URL
	DescriptionURL string `env:"OPENSEARCH_DESCRIPTION_URL"`
	// ENV: OPENSEARCH_ENDPOINT
	SearchEndpoint string `env:"OPENSEARCH_ENDPOINT"`
	// ENV: OPENSEARCH_RESULT_TYPE
	ResultType string `env:"OPENSEARCH_RESULT_TYPE,default=collection"`
	// ENV: OPENSEARCH_USERNAME
	Username string `env:"OPENSEARCH_USERNAME"`
	// ENV: OPENSEARCH_PASSWORD
	Password string `env:"OPENSEARCH_PASSWORD"`
	// ENV: OPENSEARCH_TIMEOUT_SECONDS
	TimeoutSeconds int `env:"OPENSEARCH_TIMEOUT_SECONDS,default=30"`
}

// FromEnv builds an EnvConfig using envdecode to populate the fields.
func FromEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	// envdecode errors when no variables are set; the URL check below
	// covers that case with a clearer message.
	_ = envdecode.Decode(&cfg)
	if cfg.ResultType == "" {
		cfg.ResultType = "collection"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.DescriptionURL == "" && cfg.SearchEndpoint == "" {
		return nil, fmt.Errorf("OPENSEARCH_DESCRIPTION_URL or OPENSEARCH_ENDPOINT must be set")
	}
	return &cfg, nil
}
