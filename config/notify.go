package config

import "time"

// NotifyConfig ...
type NotifyConfig struct {
	TemplatesFile string      `mapstructure:"templates_file"`
	Channels      []string    `mapstructure:"channels"`
	Retry         RetryConfig `mapstructure:"retry"`

	SMS   SMSConfig     `mapstructure:"sms"`
	Email EmailConfig   `mapstructure:"email"`
	Log   ChannelConfig `mapstructure:"log"`
}

// RetryConfig for out-of-band notification retries
type RetryConfig struct {
	InitialIntervalMs int `mapstructure:"initial_interval_ms"`
	MaxIntervalMs     int `mapstructure:"max_interval_ms"`
	MaxAttempts       int `mapstructure:"max_attempts"`
}

// InitialInterval ...
func (c RetryConfig) InitialInterval() time.Duration {
	return time.Duration(c.InitialIntervalMs) * time.Millisecond
}

// MaxInterval ...
func (c RetryConfig) MaxInterval() time.Duration {
	return time.Duration(c.MaxIntervalMs) * time.Millisecond
}

// ChannelConfig ...
type ChannelConfig struct {
	TimeoutMs int `mapstructure:"timeout_ms"`
}

// Timeout of a single send attempt
func (c ChannelConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// SMSConfig ...
type SMSConfig struct {
	Provider  string `mapstructure:"provider"`
	APIKey    string `mapstructure:"api_key"`
	Sender    string `mapstructure:"sender"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// Timeout ...
func (c SMSConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// EmailConfig for SMTP delivery
type EmailConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	Subject     string `mapstructure:"subject"`
	TimeoutMs   int    `mapstructure:"timeout_ms"`
}

// Timeout ...
func (c EmailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
