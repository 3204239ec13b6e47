package config

import (
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Server: ServerConfig{
			Port:        9999,
			MetricsPort: 9998,
		},
		DB: DBConfig{
			ConnectionString: "newConnectionString",
		},
		JobFeed: JobFeedConfig{
			BaseURL:              "https://feed.example.com",
			APIKey:               "overrideKey",
			MaxRequestsPerSecond: 7,
		},
		PageMeta: PageMetaConfig{
			BaseURL: "https://meta.example.com",
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("SERVER_PORT", strconv.Itoa(override.Server.Port))
	os.Setenv("METRICS_PORT", strconv.Itoa(override.Server.MetricsPort))
	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)
	os.Setenv("JOBFEED_BASE_URL", override.JobFeed.BaseURL)
	os.Setenv("JOBFEED_API_KEY", override.JobFeed.APIKey)
	os.Setenv("JOBFEED_MAX_REQUESTS_PER_SECOND", fmt.Sprintf("%f", override.JobFeed.MaxRequestsPerSecond))
	os.Setenv("PAGEMETA_BASE_URL", override.PageMeta.BaseURL)

	cfg := Get()

	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.MetricsPort, cfg.Server.MetricsPort)
	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, override.JobFeed.BaseURL, cfg.JobFeed.BaseURL)
	assert.Equal(t, override.JobFeed.APIKey, cfg.JobFeed.APIKey)
	assert.Equal(t, override.JobFeed.MaxRequestsPerSecond, cfg.JobFeed.MaxRequestsPerSecond)
	assert.Equal(t, override.PageMeta.BaseURL, cfg.PageMeta.BaseURL)
}
