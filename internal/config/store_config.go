package config

const (
	storeBackendVar  = "STORE_BACKEND"
	databaseDSNVar   = "DATABASE_DSN"
	redisAddrVar     = "REDIS_ADDR"
	redisPasswordVar = "REDIS_PASSWORD"
)

// Supported token record store backends.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

type StoreConfig interface {
	GetStoreBackend() string
	GetDatabaseDSN() string
	GetRedisAddr() string
	GetRedisPassword() string
}

type Store struct{}

var _ StoreConfig = Store{}

func (Store) GetStoreBackend() string {
	return GetEnv(storeBackendVar, StoreBackendMemory)
}

func (Store) GetDatabaseDSN() string {
	return GetEnv(databaseDSNVar, "")
}

func (Store) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "localhost:6379")
}

func (Store) GetRedisPassword() string {
	return GetEnv(redisPasswordVar, "")
}
