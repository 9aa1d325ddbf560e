package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/internal/postgres"
	lotteryconfig "github.com/solotto/draw-engine/modules/lottery/config"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
	"github.com/solotto/draw-engine/pkg/middleware/requestcontext"
	"github.com/solotto/draw-engine/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		BitcoinNode: BitcoinNodeClient{
			User: "user",
			Pass: "pass",
		},
		HTTPServer: HTTPServer{
			Port: 8080,
		},
		Database:      "postgres",
		EntropySource: "bitcoin-node",
	}
)

type Config struct {
	Logger        logger.Config        `mapstructure:"logger"`
	BitcoinNode   BitcoinNodeClient    `mapstructure:"bitcoin_node"`
	HTTPServer    HTTPServer           `mapstructure:"http_server"`
	Database      string               `mapstructure:"database"`
	Postgres      postgres.Config      `mapstructure:"postgres"`
	EntropySource string               `mapstructure:"entropy_source"`
	StaticSeed    string               `mapstructure:"static_seed"`
	APIOnly       bool                 `mapstructure:"api_only"`
	Ephemeral     bool                 `mapstructure:"ephemeral"`
	Lottery       lotteryconfig.Config `mapstructure:"lottery"`
}

type BitcoinNodeClient struct {
	Host       string `mapstructure:"host"`
	User       string `mapstructure:"user"`
	Pass       string `mapstructure:"pass"`
	DisableTLS bool   `mapstructure:"disable_tls"`
}

type HTTPServer struct {
	Port      int                               `mapstructure:"port"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
}

// BindPFlag binds a command-line flag to a configuration key. Must be called
// before Parse.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Failed to bind flag to configuration", slogx.String("key", key), slogx.Error(err))
	}
}

// Parse reads the configuration from the given file (or ./config.yaml when
// empty), environment variables and bound flags. Subsequent calls return the
// first result.
func Parse(configFile string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
	})

	return *config
}

// Load returns the parsed configuration. Parse must have been called first,
// usually from the root command initializer.
func Load() Config {
	return *config
}
