package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"redis": map[string]any{
				"claimMinIdle": "1m",
			},
		},
		"retention": map[string]any{
			"runOnStart": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_REDIS_CLAIMMINIDLE", want: "pubsub.redis.claimMinIdle"},
		{envKey: "RETENTION_RUNONSTART", want: "retention.runOnStart"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsRetentionAndTransport(t *testing.T) {
	cfg := &Config{
		Firebase: &FirebaseConfig{BatchSize: 2000},
		PubSub: &PubSubConfig{
			Provider: "redis",
			Redis:    &RedisStreamConfig{URL: "redis://localhost:6379", Consumer: "worker-1"},
		},
	}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Retention.Interval)
	assert.Equal(t, 24*time.Hour, cfg.Retention.MaxAge)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 500, cfg.Firebase.BatchSize)
	assert.Equal(t, "notification-queue", cfg.PubSub.Redis.Stream)
	assert.Equal(t, "dispatcher", cfg.PubSub.Redis.Group)
	assert.Equal(t, "worker-1", cfg.PubSub.Redis.Consumer)
	assert.Equal(t, 5*time.Second, cfg.PubSub.Redis.BlockTimeout)
	assert.Equal(t, time.Minute, cfg.PubSub.Redis.ClaimMinIdle)
	assert.EqualValues(t, 10, cfg.PubSub.Redis.BatchSize)
	assert.EqualValues(t, 5, cfg.PubSub.Redis.MaxDeliveries)
}

func TestApplyDefaults_KeepsExplicitRetention(t *testing.T) {
	cfg := &Config{
		Retention: &RetentionConfig{Interval: time.Hour, MaxAge: 48 * time.Hour, RunOnStart: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Retention.Interval)
	assert.Equal(t, 48*time.Hour, cfg.Retention.MaxAge)
	assert.True(t, cfg.Retention.RunOnStart)
	assert.Nil(t, cfg.Firebase)
}
