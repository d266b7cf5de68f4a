package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type DeliveryConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	DeliveryDB   `yaml:"delivery_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DeliveryDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func MustLoad() *DeliveryConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DELIVERY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DELIVERY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg DeliveryConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
