package config

import "os"

type Config struct {
	Env          string
	Port         string
	DataDir      string
	UploadDir    string
	JWTSecret    string
	Origin       string // CORS
	StoreBackend string // json | bolt
	BoltPath     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Env:          env("APP_ENV", "dev"),
		Port:         env("PORT", "5000"),
		DataDir:      env("DATA_DIR", "data"),
		UploadDir:    env("UPLOAD_DIR", "uploads"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Origin:       env("CORS_ORIGIN", "http://localhost:3000"),
		StoreBackend: env("STORE_BACKEND", "json"),
		BoltPath:     env("BOLT_PATH", "data/appointments.db"),
	}
}
