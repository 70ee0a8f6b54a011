package cmd

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/document"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RemoteAPIBaseURL string
	RemoteAPITimeout time.Duration
	ProductionLine   string

	// RedisAddr selects the Redis stats store; empty keeps the snapshot in memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StatsSchedule string
	StatsTimeout  time.Duration

	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Company is the issuer printed on every document.
func (c Config) Company() document.Company {
	return document.Company{
		Name:    c.CompanyName,
		Address: c.CompanyAddress,
		Email:   c.CompanyEmail,
		Phone:   c.CompanyPhone,
	}
}
