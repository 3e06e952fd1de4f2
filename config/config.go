package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultFirebaseBatchSize  = 500
	defaultRedisStream        = "notification-queue"
	defaultRedisGroup         = "dispatcher"
	defaultRedisBlockTimeout  = 5 * time.Second
	defaultRedisClaimMinIdle  = time.Minute
	defaultRedisBatchSize     = 10
	defaultRedisMaxDeliveries = 5
)

// DefaultRetentionWindow is both the sweep interval and the maximum row age when unset
const DefaultRetentionWindow = 24 * time.Hour

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for queue entry events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Retention configuration for the sweeper
	Retention *RetentionConfig `json:"retention" yaml:"retention"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Tokens per provider request, capped at the FCM multicast limit
	BatchSize int `json:"batchSize" yaml:"batchSize"`
}

// PubSubConfig defines the transport used to signal new queue entries
type PubSubConfig struct {
	// Provider type: "local", "google" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Dispatcher push endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Redis Streams settings (for redis provider)
	Redis *RedisStreamConfig `json:"redis" yaml:"redis"`
}

// RedisStreamConfig defines the Redis Streams queue and consumer group
type RedisStreamConfig struct {
	URL      string `json:"url" yaml:"url"`
	Stream   string `json:"stream" yaml:"stream"`
	Group    string `json:"group" yaml:"group"`
	Consumer string `json:"consumer" yaml:"consumer"`

	// How long a read blocks waiting for new messages
	BlockTimeout time.Duration `json:"blockTimeout" yaml:"blockTimeout"`

	// Pending messages idle longer than this are reclaimed for redelivery
	ClaimMinIdle time.Duration `json:"claimMinIdle" yaml:"claimMinIdle"`

	// Messages fetched per read
	BatchSize int64 `json:"batchSize" yaml:"batchSize"`

	// A message still failing after this many deliveries is acked and dropped
	MaxDeliveries int64 `json:"maxDeliveries" yaml:"maxDeliveries"`
}

// RetentionConfig defines how often and how far back the sweeper purges records
type RetentionConfig struct {
	Interval   time.Duration `json:"interval" yaml:"interval"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
	RunOnStart bool          `json:"runOnStart" yaml:"runOnStart"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections left empty in the YAML file
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Firebase != nil && (cfg.Firebase.BatchSize <= 0 || cfg.Firebase.BatchSize > defaultFirebaseBatchSize) {
		cfg.Firebase.BatchSize = defaultFirebaseBatchSize
	}

	if cfg.Retention == nil {
		cfg.Retention = &RetentionConfig{}
	}
	if cfg.Retention.Interval <= 0 {
		cfg.Retention.Interval = DefaultRetentionWindow
	}
	if cfg.Retention.MaxAge <= 0 {
		cfg.Retention.MaxAge = DefaultRetentionWindow
	}

	if cfg.PubSub != nil && cfg.PubSub.Redis != nil {
		redisCfg := cfg.PubSub.Redis
		if redisCfg.Stream == "" {
			redisCfg.Stream = defaultRedisStream
		}
		if redisCfg.Group == "" {
			redisCfg.Group = defaultRedisGroup
		}
		if redisCfg.Consumer == "" {
			redisCfg.Consumer = hostnameOr("dispatcher")
		}
		if redisCfg.BlockTimeout <= 0 {
			redisCfg.BlockTimeout = defaultRedisBlockTimeout
		}
		if redisCfg.ClaimMinIdle <= 0 {
			redisCfg.ClaimMinIdle = defaultRedisClaimMinIdle
		}
		if redisCfg.BatchSize <= 0 {
			redisCfg.BatchSize = defaultRedisBatchSize
		}
		if redisCfg.MaxDeliveries <= 0 {
			redisCfg.MaxDeliveries = defaultRedisMaxDeliveries
		}
	}
}

func hostnameOr(fallback string) string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return fallback
	}

	return name
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
