package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"moff.io/ual-tokenpocket/internal/chains"
	"moff.io/ual-tokenpocket/pkg/errors"
	"moff.io/ual-tokenpocket/pkg/tokenpocket"
	"moff.io/ual-tokenpocket/pkg/ual"
)

// Configuration struct
type Configuration struct {
	// LogLevel 0 debug, 1 info, 2 warn, 3 error
	LogLevel         int         `yaml:"log_level"`
	TokenPocket      TokenPocket `yaml:"tokenpocket"`
	Chains           []ual.Chain `yaml:"chains"`
	UserAgent        string      `yaml:"user_agent"`
	BridgeReplayPath string      `yaml:"bridge_replay_path"`
	// BridgeConnectAfter 回放桥接在多少次检测后报告已连接，负数表示永不连接
	BridgeConnectAfter int       `yaml:"bridge_connect_after"`
	Reporters          Reporters `yaml:"reporters"`
}

// TokenPocket 适配器配置，缺省字段使用适配器默认值
type TokenPocket struct {
	CheckInterval   time.Duration `yaml:"check_interval"`
	NumChecks       int           `yaml:"num_checks"`
	SupportedChains []string      `yaml:"supported_chains"`
	OnboardingLink  string        `yaml:"onboarding_link"`
}

// Options converts the section into adapter options, unset fields keep adapter defaults.
func (in TokenPocket) Options() tokenpocket.Options {
	opts := tokenpocket.Options{
		CheckInterval:  in.CheckInterval,
		NumChecks:      in.NumChecks,
		OnboardingLink: in.OnboardingLink,
	}
	if len(in.SupportedChains) > 0 {
		opts.SupportedChains = chains.NewSet(in.SupportedChains...)
	}
	return opts
}

type Reporters struct {
	SentryDSN     string        `yaml:"sentry_dsn"`
	LarkWebhook   string        `yaml:"lark_webhook"`
	ReportSilence time.Duration `yaml:"report_silence"`
}

// Validate 检查配置取值，零值视为使用默认值
func (c *Configuration) Validate() error {
	if c.LogLevel < 0 || c.LogLevel > 3 {
		return errors.Errorf("log_level must be within 0..3, got %d", c.LogLevel)
	}
	if c.TokenPocket.CheckInterval < 0 {
		return errors.Errorf("tokenpocket.check_interval must be positive, got %v", c.TokenPocket.CheckInterval)
	}
	if c.TokenPocket.NumChecks < 0 {
		return errors.Errorf("tokenpocket.num_checks must be positive, got %d", c.TokenPocket.NumChecks)
	}
	for i, chain := range c.Chains {
		if chain.ChainID == "" {
			return errors.Errorf("chains[%d].chain_id is empty", i)
		}
	}
	if c.Reporters.ReportSilence < 0 {
		return errors.Errorf("reporters.report_silence must be positive, got %v", c.Reporters.ReportSilence)
	}
	return nil
}

// Load reads and validates the yaml file at path.
func Load(path string) (*Configuration, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("file %s does not exist", path)
		}
		return nil, errors.Wrap(err, "read config file")
	}
	return Parse(dat)
}

// Parse decodes yaml content and validates it.
func Parse(dat []byte) (*Configuration, error) {
	t := Configuration{
		LogLevel: 1,
		Reporters: Reporters{
			ReportSilence: time.Minute,
		},
	}
	if err := yaml.UnmarshalStrict(dat, &t); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

var Global *Configuration

// Read reads configuration information from yml.
func Read() {
	configFilePath := flag.String("config-path", "internal/config/config.yml", "The path to the configuration file")
	flag.Parse()
	logrus.Infof("Loading configuration file from %s", *configFilePath)
	globalConfig, err := Load(*configFilePath)
	if err != nil {
		logrus.Fatal(fmt.Sprintf("fail to load config: %v", err))
	}
	Global = globalConfig
}
