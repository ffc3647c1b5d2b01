package config

import "fmt"

// MinSigningSecretLength is the minimum number of bytes required for the
// token signing secret. Startup fails when the configured secret is shorter.
const MinSigningSecretLength = 32

type Config interface {
	EnvConfig
	TokenConfig
	StoreConfig
}

type mainConfig struct {
	EnvVars
	Token
	Store
}

// New builds the process-wide configuration. The signing secret is validated
// once here and is immutable for the lifetime of the process.
func New() (Config, error) {
	c := mainConfig{}
	if len(c.GetSigningSecret()) < MinSigningSecretLength {
		return nil, fmt.Errorf("[config.New] %s must be at least %d bytes", signingSecretVar, MinSigningSecretLength)
	}
	return c, nil
}
