package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Email     *EmailConfig
}

type ServerConfig struct {
	AppName        string        // MerchShop
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration // refresh tokens are opaque, no secret needed
	BcryptCost         int
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Enabled  bool
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int           // allowed requests per window, default tier
	GeneralWindow   time.Duration // window size, default tier
	AuthLimit       int           // stricter tier for login/register/refresh
	AuthWindow      time.Duration
	ExpensiveLimit  int // tier for catalog reads
	ExpensiveWindow time.Duration
}

type EmailConfig struct {
	APIKey  string
	From    string
	Enabled bool
}
