package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the vault password is prompted at runtime and stored in memory - use
// GetVaultPasswordBytes()
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	DataDir           string `envconfig:"OWT_DATA_DIR" default:".owt"`
	OctraRPCURL       string `envconfig:"OCTRA_RPC_URL" default:"https://octra.network"`
	BalanceTTLSeconds int    `envconfig:"BALANCE_TTL_SECONDS" default:"30"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetDataDir returns the vault data directory from configuration
func GetDataDir() string {
	return Get().DataDir
}

// GetOctraRPCURL returns the Octra node RPC URL from configuration
func GetOctraRPCURL() string {
	return Get().OctraRPCURL
}

// GetBalanceTTLSeconds returns the balance cache TTL from configuration
func GetBalanceTTLSeconds() int {
	return Get().BalanceTTLSeconds
}

var passwordBytes []byte

// PromptForPassword prompts the user for the vault password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter vault password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetVaultPasswordBytes returns the password stored in memory (from
// PromptForPassword). Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetVaultPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
