package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	envFilePath string
	parseOnce   sync.Once

	loadOnce sync.Once
	loadErr  error
)

func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New fills T from the environment under prefix. The dotenv file is read
// once per process, on the first call.
func New[T any](prefix string) (*T, error) {
	loadOnce.Do(func() {
		loadErr = loadEnvFile(resolveEnvPath())
	})
	if loadErr != nil {
		return nil, loadErr
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, fmt.Errorf("config %q: %w", prefix, err)
	}

	return &conf, nil
}

func loadEnvFile(filepath string) error {
	if filepath != "" {
		if err := exportEnvironment(filepath); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		return nil
	}
	if err := exportEnvironmentIfExists(".env"); err != nil {
		return fmt.Errorf("failed to load default env file: %w", err)
	}
	return nil
}

func resolveEnvPath() string {
	parseOnce.Do(func() {
		if flag.Lookup("env") == nil {
			flag.StringVar(&envFilePath, "env", "", "path to .env file")
		}
		if !flag.Parsed() {
			flag.Parse()
		}
	})
	return strings.TrimSpace(envFilePath)
}

func exportEnvironmentIfExists(filepath string) error {
	info, err := os.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	return exportEnvironment(filepath)
}

// exportEnvironment copies file settings into the process env. Variables
// already set in the environment win over the file.
func exportEnvironment(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range v.AllSettings() {
		key := strings.ToUpper(k)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return err
		}
	}

	return nil
}
