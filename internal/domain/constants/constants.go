// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage providers
const (
	StorageProviderFirestore = "firestore"
	StorageProviderMemory    = "memory"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage layout
const (
	ClientsCollection     = "clients"
	UserClientsCollection = "userClients"
)
