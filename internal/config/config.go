package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "EVENTHUB"

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

var errUnknownStoreDriver = errors.New("unknown store driver")

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Log      *LogConfig      `mapstructure:"log"`
	Store    *StoreConfig    `mapstructure:"store"`
	Postgres *PostgresConfig `mapstructure:"postgres"`

	v *viper.Viper
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
	// Strict makes unreadable collections fail startup instead of loading
	// as empty.
	Strict bool `mapstructure:"strict"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, sslMode)
}

// Flags declares the command-line overrides. Flag names match config keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("eventhub", pflag.ContinueOnError)
	fs.String("config", "./cmd/app/config.yml", "path to the config file")
	fs.String("api.port", "", "port the local bridge listens on")
	fs.String("log.level", "", "log level (debug, info, warn, error)")
	fs.String("store.driver", "", "store driver: file, postgres or memory")
	fs.String("store.dir", "", "data directory of the file store")
	fs.Bool("store.strict", false, "fail on unreadable collections")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.host", "127.0.0.1")
	v.SetDefault("api.port", "8080")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", StoreDriverFile)
	v.SetDefault("store.dir", "./data")
	v.SetDefault("postgres.port", "5432")
}

// Load reads the config file, then environment (EVENTHUB_API_PORT, ...),
// then the flags that were explicitly set.
func Load(path string, flags *pflag.FlagSet) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || !f.Changed || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(f.Name, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("v.BindPFlag -> %w", bindErr)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}
	conf.v = v

	return conf, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	if conf.API == nil {
		conf.API = &APIConfig{}
	}
	if conf.Gin == nil {
		conf.Gin = &GinConfig{}
	}
	if conf.Log == nil {
		conf.Log = &LogConfig{}
	}
	if conf.Store == nil {
		conf.Store = &StoreConfig{}
	}
	if conf.Postgres == nil {
		conf.Postgres = &PostgresConfig{}
	}

	switch conf.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("%w %q", errUnknownStoreDriver, conf.Store.Driver)
	}

	return conf, nil
}

// Watch calls onChange with the re-read config each time the file changes.
// Unreadable edits are logged and skipped.
func (c *AppConfig) Watch(onChange func(*AppConfig)) {
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next, err := decode(c.v)
		if err != nil {
			zap.L().Warn("ignoring config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		next.v = c.v
		onChange(next)
	})
	c.v.WatchConfig()
}
