package config

import (
	"bytes"
	_ "embed" // for default config
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed config.default.yml
var defaultConfig []byte

// Config for the whole process
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	MySQL       MySQLConfig       `mapstructure:"mysql"`
	Memcache    MemcacheConfig    `mapstructure:"memcache"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Jaeger      JaegerConfig      `mapstructure:"jaeger"`
	Notify      NotifyConfig      `mapstructure:"notify"`
	Sweep       SweepConfig       `mapstructure:"sweep"`
	StatusCache StatusCacheConfig `mapstructure:"status_cache"`
}

// ListenAddr ...
type ListenAddr struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String for dialing
func (a ListenAddr) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// ListenString for listening on all interfaces
func (a ListenAddr) ListenString() string {
	return fmt.Sprintf(":%d", a.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ListenAddr `mapstructure:"grpc"`
	HTTP ListenAddr `mapstructure:"http"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	Environment string `mapstructure:"environment"`
}

// StatusCacheConfig for the in-process customer status cache
type StatusCacheConfig struct {
	SizeBytes  int `mapstructure:"size_bytes"`
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// TTL ...
func (c StatusCacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// SweepConfig for the periodic ban expiry sweep
type SweepConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	IntervalSeconds int    `mapstructure:"interval_seconds"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	BatchSize       int    `mapstructure:"batch_size"`
	Parallelism     int    `mapstructure:"parallelism"`
	LockBackend     string `mapstructure:"lock_backend"`
	LockKey         string `mapstructure:"lock_key"`
}

// Interval ...
func (c SweepConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Timeout ...
func (c SweepConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func loadConfigData(v *viper.Viper, filename string) {
	v.SetConfigType("yaml")

	err := v.ReadConfig(bytes.NewReader(defaultConfig))
	if err != nil {
		panic(err)
	}

	v.SetConfigFile(filename)
	err = v.MergeInConfig()
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			panic(err)
		}
		fmt.Println("[WARN] config file not found, using defaults:", filename)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func unmarshal(v *viper.Viper) Config {
	var conf Config
	err := v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml (or CONFIG_FILE) on top of the embedded defaults
func Load() Config {
	_ = godotenv.Load()

	filename := os.Getenv("CONFIG_FILE")
	if filename == "" {
		filename = "config.yml"
	}

	v := viper.New()
	loadConfigData(v, filename)
	return unmarshal(v)
}

// LoadTestConfig reads config.test.yml from the root directory of the repository
func LoadTestConfig(rootDir string) Config {
	v := viper.New()
	loadConfigData(v, path.Join(rootDir, "config.test.yml"))
	return unmarshal(v)
}
