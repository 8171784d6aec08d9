package xlchart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Repository RepositoryConfig
	Server     ServerConfig
	Plot       PlotConfig
}

// RepositoryConfig holds the document repository location.
type RepositoryConfig struct {
	Dir string
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string
}

// PlotConfig holds plotting defaults.
type PlotConfig struct {
	Format string
	Sheet  string
}

// LoadConfig reads configuration from file and env. Env var overrides use prefix XLCHART_.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("repository.dir", ".")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("plot.format", string(FormatHTML))
	v.SetDefault("plot.sheet", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("XLCHART_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "xlchart"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("XLCHART")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, ok := ParseFormat(c.Plot.Format); !ok {
		return Config{}, fmt.Errorf("invalid plot.format %q", c.Plot.Format)
	}
	return c, nil
}
