package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppEnv  string `yaml:"APP_ENV" envconfig:"APP_ENV"`
	AppPort string `yaml:"APP_PORT" envconfig:"APP_PORT"`
	AppURL  string `yaml:"APP_URL" envconfig:"APP_URL"`
	LogFile string `yaml:"LOG_FILE" envconfig:"LOG_FILE"`

	// Database configuration
	DBUser         string `yaml:"DB_USER" envconfig:"DB_USER"`
	DBName         string `yaml:"DB_NAME" envconfig:"DB_NAME"`
	DBPassword     string `yaml:"DB_PASSWORD" envconfig:"DB_PASSWORD"`
	DBPort         string `yaml:"DB_PORT" envconfig:"DB_PORT"`
	DBHost         string `yaml:"DB_HOST" envconfig:"DB_HOST"`
	DBMaxOpenConns int    `yaml:"DB_MAX_OPEN_CONNS" envconfig:"DB_MAX_OPEN_CONNS"`

	// Session signing and cookie encryption
	JWTSecret         string `yaml:"JWT_SECRET" envconfig:"JWT_SECRET"`
	AESKey            string `yaml:"AES_KEY" envconfig:"AES_KEY"`
	SessionTTLMinutes int    `yaml:"SESSION_TTL_MINUTES" envconfig:"SESSION_TTL_MINUTES"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" envconfig:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" envconfig:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" envconfig:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" envconfig:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" envconfig:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" envconfig:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" envconfig:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" envconfig:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppEnv:            "development",
		AppPort:           "8111",
		LogFile:           "./logs/app.log",
		DBPort:            "5432",
		DBMaxOpenConns:    10,
		SessionTTLMinutes: 120,
	}
}

// LoadConfig reads config.yaml from the working directory and then lets the
// environment (including a .env file) override individual keys.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	_ = godotenv.Load()
	if err := envconfig.Process("", &cfg); err != nil {
		log.Printf("Error reading environment overrides: %s\n", err)
	}

	config = cfg
}

func Get() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "APP_ENV":
		return config.AppEnv
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_MAX_OPEN_CONNS":
		return strconv.Itoa(config.DBMaxOpenConns)
	case "JWT_SECRET":
		return config.JWTSecret
	case "AES_KEY":
		return config.AESKey
	case "SESSION_TTL_MINUTES":
		return strconv.Itoa(config.SessionTTLMinutes)
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
