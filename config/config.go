package config

import (
	"github.com/spf13/viper"

	"github.com/TimJentzsch/buttercup/model"
)

var Cfg model.Config

// LoadConfig reads config.yaml from the working directory into Cfg.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("blossom.url", "https://grafeas.org/api")
	viper.SetDefault("queue.update_interval", "1m")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
