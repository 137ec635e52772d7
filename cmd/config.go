package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".nluctl"
	configFileName = "config"

	keyRepositoryDriver     = "repository.driver"
	keyRepositoryPath       = "repository.path"
	keyRepositoryDSN        = "repository.dsn"
	keyEngineURL            = "engine.url"
	keyEngineSecretRef      = "engine.secret_ref"
	keyEngineTimeout        = "engine.timeout"
	keyTrainingQueueOnMount = "training.queue_on_mount"
	keyTrainingDisabled     = "training.disabled"
	keyTrainingWorkers      = "training.workers"
	keyTrainingCancelWait   = "training.cancel_wait"
	keyTrainingPollInterval = "training.poll_interval"
	keyBotsDir              = "bots.dir"
	keyServerListen         = "server.listen"
	keyServerURL            = "server.url"
	keyLogLevel             = "log.level"
)

type rootOptions struct {
	configPath string
	cfg        *viper.Viper
	homeDir    string
}

func (o *rootOptions) load() error {
	cfg, homeDir, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.homeDir = homeDir
	return nil
}

func (o *rootOptions) config() *viper.Viper {
	if o.cfg == nil {
		return viper.New()
	}
	return o.cfg
}

// loadConfig reads the TOML config file, if any, on top of the defaults.
// NLUCTL_* environment variables override file values.
func loadConfig(path string) (*viper.Viper, string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetDefault(keyRepositoryDriver, "toml")
	cfg.SetDefault(keyRepositoryPath, filepath.Join(configDir, "trainings.toml"))
	cfg.SetDefault(keyRepositoryDSN, "")
	cfg.SetDefault(keyEngineURL, "http://127.0.0.1:3200")
	cfg.SetDefault(keyEngineSecretRef, "")
	cfg.SetDefault(keyEngineTimeout, 30*time.Second)
	cfg.SetDefault(keyTrainingQueueOnMount, true)
	cfg.SetDefault(keyTrainingDisabled, false)
	cfg.SetDefault(keyTrainingWorkers, 2)
	cfg.SetDefault(keyTrainingCancelWait, 5*time.Second)
	cfg.SetDefault(keyTrainingPollInterval, time.Second)
	cfg.SetDefault(keyBotsDir, filepath.Join(configDir, "bots"))
	cfg.SetDefault(keyServerListen, "127.0.0.1:3100")
	cfg.SetDefault(keyServerURL, "http://127.0.0.1:3100")
	cfg.SetDefault(keyLogLevel, "info")

	cfg.SetEnvPrefix("NLUCTL")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindEnv(keyTrainingDisabled, "NLUCTL_TRAINING_DISABLED", "NLU_DISABLE_TRAINING"); err != nil {
		return nil, "", fmt.Errorf("bind training kill switch: %w", err)
	}

	cfg.SetConfigType("toml")
	if path != "" {
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configFileName)
		cfg.AddConfigPath(configDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, homeDir, nil
}
