package configs

// Redis holds configuration for the Redis instance that stores the ML-score
// cache and the simulated clock.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
	// Password is optional; empty disables AUTH.
	Password string `env:"PASSWORD" envDefault:""`
}
