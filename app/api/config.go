package main

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bValidator "github.com/opepen-graveyard/goapi/base/validator"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/service/alchemy"
	"github.com/opepen-graveyard/goapi/service/etherscan"
	metadata_usecase "github.com/opepen-graveyard/goapi/stores/metadata/usecase"
)

const (
	defaultConfigPath = "infra/configs/config.yaml"

	GallerySourceLocal = "local"
	GallerySourceHttp  = "http"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type HttpConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type UpstreamConfig struct {
	ApiKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type OpepenConfig struct {
	Contract string `mapstructure:"contract" validate:"eth_addr"`
	Supply   int    `mapstructure:"supply" validate:"gt=0"`
}

type MetadataConfig struct {
	BatchSize  int           `mapstructure:"batchSize" validate:"gte=1,lte=100"`
	BatchDelay time.Duration `mapstructure:"batchDelay" validate:"gte=0"`
}

type CacheConfig struct {
	Ttl    time.Duration `mapstructure:"ttl" validate:"gte=0"`
	SizeMB int           `mapstructure:"sizeMB" validate:"gt=0"`
}

type GalleryConfig struct {
	Source     string `mapstructure:"source" validate:"oneof=local http"`
	ApiBaseUrl string `mapstructure:"apiBaseUrl" validate:"omitempty,url"`
}

type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Debug     bool           `mapstructure:"debug"`
	Http      HttpConfig     `mapstructure:"http"`
	Etherscan UpstreamConfig `mapstructure:"etherscan"`
	Alchemy   UpstreamConfig `mapstructure:"alchemy"`
	Opepen    OpepenConfig   `mapstructure:"opepen"`
	Metadata  MetadataConfig `mapstructure:"metadata"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Gallery   GalleryConfig  `mapstructure:"gallery"`
}

// GalleryBaseUrl is where the http gallery source finds the api, this server unless configured
func (c *Config) GalleryBaseUrl() string {
	if c.Gallery.ApiBaseUrl != "" {
		return c.Gallery.ApiBaseUrl
	}
	addr := c.Server.Address
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("debug", false)
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("etherscan.apiKey", "")
	v.SetDefault("etherscan.endpoint", etherscan.DefaultEndpoint)
	v.SetDefault("alchemy.apiKey", "")
	v.SetDefault("alchemy.endpoint", alchemy.DefaultEndpoint)
	v.SetDefault("opepen.contract", string(opepen.ContractAddress))
	v.SetDefault("opepen.supply", opepen.Supply)
	v.SetDefault("metadata.batchSize", alchemy.MaxBatchSize)
	v.SetDefault("metadata.batchDelay", metadata_usecase.DefaultBatchDelay)
	v.SetDefault("cache.ttl", time.Duration(0))
	v.SetDefault("cache.sizeMB", 1024)
	v.SetDefault("gallery.source", GallerySourceLocal)
	v.SetDefault("gallery.apiBaseUrl", "")
	v.SetDefault("datadog_host", "")
	v.SetDefault("env_name", "local")
	v.SetDefault("app_name", "opepen-graveyard")
}

// loadConfig reads path into v, applies env overrides and validates the result.
// A missing file leaves defaults and env in place.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("etherscan.apiKey", "ETHERSCAN_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("alchemy.apiKey", "ALCHEMY_API_KEY"); err != nil {
		return nil, err
	}

	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, xerrors.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, xerrors.Errorf("decode config: %w", err)
	}
	if err := bValidator.NewCustomValidator(validator.New()).Validate(cfg); err != nil {
		return nil, xerrors.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
