package config

import "time"

type Config struct {
	Web   Web
	DB    DB
	Redis Redis
	Cart  Cart
	Admin Admin
	Cors  Cors
	Rate  Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type DB struct {
	User       string `conf:"default:postgres"`
	Password   string `conf:"default:postgres,mask"`
	Host       string `conf:"default:localhost"`
	Name       string `conf:"default:skinflex"`
	DisableTLS bool   `conf:"default:true"`
}

type Redis struct {
	Address  string `conf:"default:localhost:6379"`
	Password string `conf:"default:,mask"`
	DB       int    `conf:"default:0"`
}

type Cart struct {
	// KeyPrefix namespaces cart blobs in the key-value slot.
	KeyPrefix       string        `conf:"default:skinflex:cart:"`
	SessionLifetime time.Duration `conf:"default:720h"`
}

type Admin struct {
	APIKey string `conf:"default:,mask"`
}

type Cors struct {
	Origin string
}

type Rate struct {
	Burst        int     `conf:"default:20"`
	RPS          float64 `conf:"default:10"`
	ExpiryMinute int     `conf:"default:10"`
}
