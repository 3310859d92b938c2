package model

import "time"

// Config mirrors the top-level structure of config.yaml.
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
	Blossom  Blossom  `mapstructure:"blossom"`
	Queue    Queue    `mapstructure:"queue"`
}

// Commands corresponds to the "commands" section.
type Commands struct {
	Allowguils []string `mapstructure:"allowguils"`
}

// Blossom holds the endpoint and credentials for the Blossom API.
type Blossom struct {
	URL      string `mapstructure:"url"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	APIKey   string `mapstructure:"api_key"`
}

// Queue corresponds to the "queue" section.
type Queue struct {
	UpdateInterval time.Duration `mapstructure:"update_interval"`
}
