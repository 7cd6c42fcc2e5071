// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cart snapshot storage providers
const (
	StorageProviderBlob     = "blob"
	StorageProviderRedis    = "redis"
	StorageProviderPostgres = "postgres"
)

// Discount catalog providers
const (
	DiscountProviderHTTP     = "http"
	DiscountProviderPostgres = "postgres"
	DiscountProviderStatic   = "static"
)
