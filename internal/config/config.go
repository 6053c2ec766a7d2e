package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisPass   string
	JWTSecret   string
	HTTPPort    string
	CORSOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "My-Shop"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		JWTSecret: getEnv("JWT_SECRET", "super-secret"),
		HTTPPort:  getEnv("HTTP_PORT", "5000"),
		// orígenes del frontend de la tienda (allow-list, separados por coma)
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:4000")),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
