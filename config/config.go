// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

var (
	// ErrNoTarget is returned when the target block is not configured
	ErrNoTarget = errors.New("no target block configured")
)

// Config is the configuration of the verifier
type Config struct {
	Log         LogConfig         `toml:"log"`
	Authorities AuthoritiesConfig `toml:"authorities"`
	Target      TargetConfig      `toml:"target,omitempty"`
	RPC         RPCConfig         `toml:"rpc"`
	Metrics     MetricsConfig     `toml:"metrics"`
}

// LogConfig is the global logger configuration
type LogConfig struct {
	Level  string `toml:"level" validate:"required"`
	Format string `toml:"format,omitempty" validate:"omitempty,oneof=console json"`
}

// AuthoritiesConfig is the authority set justifications are verified against
type AuthoritiesConfig struct {
	SetID uint64            `toml:"set_id"`
	List  []AuthorityConfig `toml:"list" validate:"required,min=1,dive"`
}

// AuthorityConfig is a single authority. ID is a 0x prefixed hex
// public key or an SS58 address.
type AuthorityConfig struct {
	ID     string `toml:"id" validate:"required"`
	Weight uint64 `toml:"weight" validate:"gt=0"`
}

// TargetConfig is the block a one-shot verification expects to be finalized
type TargetConfig struct {
	Hash   string `toml:"hash,omitempty"`
	Number uint32 `toml:"number,omitempty"`
}

// RPCConfig is the JSON-RPC server configuration
type RPCConfig struct {
	Address  string   `toml:"address" validate:"required,hostname_port"`
	External bool     `toml:"external,omitempty"`
	Modules  []string `toml:"modules,omitempty" validate:"dive,oneof=grandpa rpc"`
	// MaxRequestSize is the request body limit in bytes, 4 MiB when zero.
	MaxRequestSize int64 `toml:"max_request_size,omitempty" validate:"gte=0"`
}

// MetricsConfig is the prometheus server configuration
type MetricsConfig struct {
	Enabled bool   `toml:"enabled,omitempty"`
	Address string `toml:"address" validate:"omitempty,hostname_port"`
}

// Default returns the default configuration, without any authority.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  log.Info.String(),
			Format: "console",
		},
		RPC: RPCConfig{
			Address: "127.0.0.1:8545",
			Modules: []string{"grandpa", "rpc"},
		},
		Metrics: MetricsConfig{
			Address: "127.0.0.1:9876",
		},
	}
}

// Load reads the TOML configuration file at path on top of the default
// configuration, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	cfg := Default()
	err = toml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Export writes the configuration to the TOML file at path.
func Export(cfg *Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Validate checks the configuration values, including the authority
// ids and the log settings.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	_, err = c.LogLevel()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	_, err = c.AuthorityList()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Target.Hash != "" {
		_, err = common.HexToHash(c.Target.Hash)
		if err != nil {
			return fmt.Errorf("invalid configuration: target hash: %w", err)
		}
	}

	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// LogFormat returns the configured log format, console by default.
func (c *Config) LogFormat() (log.Format, error) {
	if c.Log.Format == "" {
		return log.FormatConsole, nil
	}
	return log.ParseFormat(c.Log.Format)
}

// AuthorityList decodes the configured authorities.
func (c *Config) AuthorityList() (types.AuthorityList, error) {
	authorities := make(types.AuthorityList, len(c.Authorities.List))
	for i, authority := range c.Authorities.List {
		id, err := ed25519.NewPublicKeyBytesFromString(authority.ID)
		if err != nil {
			return nil, fmt.Errorf("authority %d: %w", i, err)
		}
		authorities[i] = types.NewAuthority(id, authority.Weight)
	}
	return authorities, nil
}

// VerificationContext builds the verification context of the configured
// authority set.
func (c *Config) VerificationContext() (justification.VerificationContext, error) {
	authorities, err := c.AuthorityList()
	if err != nil {
		return justification.VerificationContext{}, err
	}
	return justification.NewVerificationContext(authorities, c.Authorities.SetID)
}

// TargetID returns the configured target block.
func (c *Config) TargetID() (types.HeaderID, error) {
	if c.Target.Hash == "" {
		return types.HeaderID{}, ErrNoTarget
	}

	hash, err := common.HexToHash(c.Target.Hash)
	if err != nil {
		return types.HeaderID{}, fmt.Errorf("target hash: %w", err)
	}
	return types.HeaderID{Hash: hash, Number: types.BlockNumber(c.Target.Number)}, nil
}

// AddAuthorities appends the keypairs to the configured authorities, all
// with the given weight.
func (c *Config) AddAuthorities(weight uint64, keypairs ...*ed25519.Keypair) {
	for _, authority := range types.NewAuthorityListFromKeypairs(weight, keypairs...) {
		c.Authorities.List = append(c.Authorities.List, AuthorityConfig{
			ID:     authority.Key.SS58(),
			Weight: authority.Weight,
		})
	}
}
