package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	History HistoryConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// BackendConfig contains the tabular backend connection configuration.
// The backend is a hosted spreadsheet-style database reached over HTTP
// with a bearer API key; this service never owns the ride tables.
type BackendConfig struct {
	BaseURL       string
	APIKey        string
	BaseID        string
	RidesTable    string
	RequestsTable string
	Timeout       int // in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// HistoryConfig contains device-history configuration
type HistoryConfig struct {
	RetentionDays int // history tokens older than this are treated as absent
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
