package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	bootstrapUserVar  = "BOOTSTRAP_USERNAME"
	bootstrapPassVar  = "BOOTSTRAP_PASSWORD"
	bootstrapRolesVar = "BOOTSTRAP_ROLES"
)

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetBootstrapUsername() string
	GetBootstrapPassword() string
	GetBootstrapRoles() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go Session Service")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetBootstrapUsername returns the username seeded into the identity store at
// startup when both bootstrap variables are set.
func (EnvVars) GetBootstrapUsername() string {
	return GetEnv(bootstrapUserVar, "")
}

func (EnvVars) GetBootstrapPassword() string {
	return GetEnv(bootstrapPassVar, "")
}

// GetBootstrapRoles returns a comma-separated role list for the bootstrap user.
func (EnvVars) GetBootstrapRoles() string {
	return GetEnv(bootstrapRolesVar, "user")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
