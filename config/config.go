package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "TECHMART_CONFIG_FILE"

type catalog struct {
	// Seed of 0 keeps the original behavior: a different catalog on
	// every restart. Set a non-zero seed for a reproducible catalog.
	Seed         int64 `mapstructure:"seed"`
	CategorySize int   `mapstructure:"category_size"`
}

type Config struct {
	LogLevel         slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr   string        `mapstructure:"http_server_addr"`
	SnapshotDir      string        `mapstructure:"snapshot_dir"`
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
	Catalog          catalog       `mapstructure:"catalog"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SnapshotDir=%q
	SimulatedLatency=%q

	Catalog:
	Seed=%d
	CategorySize=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SnapshotDir,
		c.SimulatedLatency,
		c.Catalog.Seed,
		c.Catalog.CategorySize,
	)
}
