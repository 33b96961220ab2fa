package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	OTP       OTPConfig
	Telemetry TelemetryConfig
	Logger    LoggerConfig
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

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string // nsqd TCP address
	LookupdAddress string // optional nsqlookupd HTTP address
	Channel        string
}

// OTPConfig contains external OTP provider configuration
type OTPConfig struct {
	BaseURL        string
	CustomerID     string
	APIPassword    string // base64-encoded provider password
	CountryCode    string
	CodeLength     int
	TimeoutSeconds int // bound on every provider call
	TokenTTLHours  int
}

// TelemetryConfig contains GPS ingestion and tracking configuration
type TelemetryConfig struct {
	JitterThresholdKm float64 // minimum delta that moves the distance counter
	CacheTTLHours     int     // last-known-position cache retention
	SubscriberBuffer  int     // per-subscriber event queue size
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
