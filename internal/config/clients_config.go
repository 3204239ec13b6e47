package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type JobFeedConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	APIKey               string  `mapstructure:"api_key"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config JobFeedConfig) validate() error {

	var missingFields []string

	if config.BaseURL == "" {
		missingFields = append(missingFields, "base_url")
	}

	if config.APIKey == "" {
		missingFields = append(missingFields, "api_key")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config JobFeedConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("jobfeed.base_url", "JOBFEED_BASE_URL"); err != nil {
		return err
	}

	if err := viper.BindEnv("jobfeed.api_key", "JOBFEED_API_KEY"); err != nil {
		return err
	}

	return viper.BindEnv("jobfeed.max_requests_per_second", "JOBFEED_MAX_REQUESTS_PER_SECOND")
}

type PageMetaConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

func (config PageMetaConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("pagemeta.base_url", "PAGEMETA_BASE_URL")
}
