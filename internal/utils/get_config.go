package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// App
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Google Cloud Vision OCR
	GoogleCloudAPIKey string `yaml:"GOOGLE_CLOUD_API_KEY"`

	// Structured extraction backends
	AnalyzerBackend string `yaml:"ANALYZER_BACKEND"` // "gemini" (default) or "claude"
	GeminiAPIKey    string `yaml:"GEMINI_API_KEY"`
	GeminiModel     string `yaml:"GEMINI_MODEL"`
	ClaudeAPIKey    string `yaml:"CLAUDE_API_KEY"`
	ClaudeModel     string `yaml:"CLAUDE_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
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
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GOOGLE_CLOUD_API_KEY":
		return config.GoogleCloudAPIKey
	case "ANALYZER_BACKEND":
		return config.AnalyzerBackend
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "CLAUDE_API_KEY":
		return config.ClaudeAPIKey
	case "CLAUDE_MODEL":
		return config.ClaudeModel
	default:
		return ""
	}
}
