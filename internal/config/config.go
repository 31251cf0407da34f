package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Consul   ConsulConfig
}

type ServerConfig struct {
	Port           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type ConsulConfig struct {
	Address string
}

func Load() *Config {
	name := getEnv("SERVICE_NAME", "athos-learning-service")
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "6700"),
			ServiceName:    name,
			ServiceAddress: getEnv("SERVICE_ADDRESS", "athos-learning-service"),
			ServiceID:      name + "-" + getEnv("HOSTNAME", "learning"),
		},
		MongoDB: MongoDBConfig{
			URI:      os.Getenv("MONGO_URI"),
			Database: getEnv("MONGO_DATABASE", "athos_learning"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("REDIS_TTL", 10*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      os.Getenv("RABBITMQ_URI"),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "learning.events"),
		},
		Consul: ConsulConfig{
			Address: getEnv("CONSUL_ADDR", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
