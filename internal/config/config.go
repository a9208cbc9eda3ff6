// Package config loads the process configuration from an optional YAML file
// and the environment. Values already set on the passed struct act as
// defaults, file values override them, and environment variables (dots
// replaced by underscores) override both.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the full process configuration.
type Config struct {
	Redis     Redis     `mapstructure:"redis"`
	HTTP      HTTP      `mapstructure:"http"`
	Transport Transport `mapstructure:"transport"`
	Shards    Shards    `mapstructure:"shards"`
	Game      Game      `mapstructure:"game"`
	Ledger    Ledger    `mapstructure:"ledger"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Transport selects how shards exchange envelopes when one process hosts
// all of them: "loopback" for synchronous in-process delivery, "redis" for
// stream-backed inboxes.
type Transport struct {
	Mode string `mapstructure:"mode"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// Shards names the three state partitions this process hosts.
type Shards struct {
	Room         string `mapstructure:"room"`
	QuestionBank string `mapstructure:"question_bank"`
	Bankroll     string `mapstructure:"bankroll"`
}

type Game struct {
	QuestionBatchSize int           `mapstructure:"question_batch_size"`
	QuestionTimeout   time.Duration `mapstructure:"question_timeout"`
	SpeedBonusAlways  bool          `mapstructure:"speed_bonus_always"`
}

type Ledger struct {
	CreditPolicy string        `mapstructure:"credit_policy"`
	DailyBonus   uint64        `mapstructure:"daily_bonus"`
	BonusPeriod  time.Duration `mapstructure:"bonus_period"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Redis: Redis{
			Addr: "localhost:6379",
		},
		HTTP: HTTP{
			Addr: ":8080",
		},
		Transport: Transport{
			Mode: "loopback",
		},
		Shards: Shards{
			Room:         "room-1",
			QuestionBank: "qbank",
			Bankroll:     "bankroll",
		},
		Game: Game{
			QuestionBatchSize: 10,
			QuestionTimeout:   30 * time.Second,
		},
		Ledger: Ledger{
			CreditPolicy: "additive",
			DailyBonus:   100,
			BonusPeriod:  24 * time.Hour,
		},
	}
}

// Load merges file and environment values into config, which must be a
// pointer. An empty file path skips the file and reads the environment only.
func Load(file string, config any) error {
	v := viper.New()
	m := make(map[string]any)

	if err := mapstructure.Decode(config, &m); err != nil {
		return fmt.Errorf("mapstructure: %v", err)
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("merge config map: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config from file %s: %v", file, err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshal config: %v", err)
	}

	return nil
}
