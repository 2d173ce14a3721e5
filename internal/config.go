package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type StrataConfig struct {
	AppName string `mapstructure:"app_name"`

	Catalog struct {
		DataDir         string `mapstructure:"data_dir"`
		DefaultDatabase string `mapstructure:"default_database"`
		// "legacy" keeps the inverted IF NOT EXISTS check; "strict"
		// is conventional SQL.
		TableExistsPolicy string `mapstructure:"table_exists_policy"`
	} `mapstructure:"catalog"`

	Index struct {
		// "file" persists index metadata; "none" leaves every logical
		// index unbound.
		Engine string `mapstructure:"engine"`
	} `mapstructure:"index"`
}

func LoadConfig(path string) (*StrataConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("catalog.default_database", "default")
	v.SetDefault("catalog.table_exists_policy", "legacy")
	v.SetDefault("index.engine", "file")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg StrataConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
