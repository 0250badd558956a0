package appConfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"gpc/internal/ext"
	logger "gpc/internal/log"
	"gpc/internal/projectFile"
)

const (
	ConfigFileName         = "gpc.yaml"
	DefaultEndpoint        = "https://api.graph.cool/system"
	DefaultTokenEnvVar     = "GRAPHCOOL_TOKEN"
	DefaultProjectFileName = projectFile.DefaultFileName
	DefaultLogFileName     = logger.LogFileName
	DefaultRequestTimeout  = 30 * time.Second
)

type AppConfig struct {
	Endpoint               string        `yaml:"endpoint"`       // GraphQL system API endpoint
	EnvTokenVariableName   string        `yaml:"tokenEnvVar"`    // The environment variable name for the API token
	DefaultProjectFileName string        `yaml:"projectFile"`    // Descriptor file used when none is given
	LogFileName            string        `yaml:"logFile"`        // Where the log is written
	RequestTimeout         time.Duration `yaml:"requestTimeout"` // 0 is interpreted as the default timeout
}

// Defaults returns a configuration with every field set.
func Defaults() *AppConfig {
	return (&AppConfig{}).withDefaults()
}

func (config *AppConfig) withDefaults() *AppConfig {
	config.Endpoint = ext.DefaultValue(config.Endpoint, DefaultEndpoint)
	config.EnvTokenVariableName = ext.DefaultValue(config.EnvTokenVariableName, DefaultTokenEnvVar)
	config.DefaultProjectFileName = ext.DefaultValue(config.DefaultProjectFileName, DefaultProjectFileName)
	config.LogFileName = ext.DefaultValue(config.LogFileName, DefaultLogFileName)
	config.RequestTimeout = ext.DefaultValue(config.RequestTimeout, DefaultRequestTimeout)
	return config
}

// RetrieveTokenFromEnv looks the token up in the environment, falling back to a .env file in the working directory.
func (config AppConfig) RetrieveTokenFromEnv() string {
	token := os.Getenv(config.EnvTokenVariableName)
	if token != "" {
		return token
	}
	dotEnv, err := godotenv.Read()
	if err != nil {
		return ""
	}
	return dotEnv[config.EnvTokenVariableName]
}

// LoadConfig reads the config file from the working directory, then the home directory.
// An explicit path must exist. With no file found the defaults are returned.
func LoadConfig(explicitPath string) (*AppConfig, error) {
	configFilePath, err := findConfigFile(explicitPath)
	if err != nil {
		return nil, err
	}
	if configFilePath == "" {
		return Defaults(), nil
	}
	return LoadFromFile(configFilePath)
}

func LoadFromFile(configFilePath string) (*AppConfig, error) {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var config AppConfig
	err = yaml.UnmarshalStrict(data, &config)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", configFilePath, err)
	}

	return config.withDefaults(), nil
}

func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file %s not found: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	homeConfig := filepath.Join(homeDir, ConfigFileName)
	if _, err := os.Stat(homeConfig); err == nil {
		return homeConfig, nil
	}
	return "", nil
}
