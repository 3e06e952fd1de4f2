// Package constants contains values shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Queue entry event transports
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderRedis  = "redis"
)

// Message attribute keys shared by publishers and consumers
const (
	AttrRequestID = "request_id"
	AttrEntryID   = "entry_id"
)
