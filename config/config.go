// Package config loads the application configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Store configures the device-local key-value file backing the entity
	// collections.
	Store *StoreConfig `json:"store" yaml:"store"`

	// Escrow configures the automatic disbursement behavior.
	Escrow *EscrowConfig `json:"escrow" yaml:"escrow"`

	// Marketplace configures purchase amount and delivery estimation rules.
	Marketplace *MarketplaceConfig `json:"marketplace" yaml:"marketplace"`

	// Region configures the coordinate-based regional affinity check.
	Region *RegionConfig `json:"region" yaml:"region"`

	// Remote configures the external auth and text-generation collaborators.
	Remote *RemoteConfig `json:"remote" yaml:"remote"`

	// QRCode configures listing share QR generation.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines where the serialized entity collections live.
type StoreConfig struct {
	// Path to the JSON key-value file. Created on first write if missing.
	Path string `json:"path" yaml:"path"`
}

// EscrowConfig defines the escrow release policy.
type EscrowConfig struct {
	// Delay between delivery confirmation and automatic disbursement.
	DisburseDelay time.Duration `json:"disburseDelay" yaml:"disburseDelay"`
}

// MarketplaceConfig defines purchase amount and delivery estimation rules.
type MarketplaceConfig struct {
	// QuantityMultiplier is the fixed lot size a purchase covers, in units
	// of the crop's unit price.
	QuantityMultiplier int64 `json:"quantityMultiplier" yaml:"quantityMultiplier"`

	// PlatformDeliveryFee is added to the amount for platform-managed delivery.
	PlatformDeliveryFee int64 `json:"platformDeliveryFee" yaml:"platformDeliveryFee"`

	// PlatformTransitDays is the arrival estimate for platform delivery.
	PlatformTransitDays int `json:"platformTransitDays" yaml:"platformTransitDays"`

	// SelfTransitDays is the arrival estimate for self transport.
	SelfTransitDays int `json:"selfTransitDays" yaml:"selfTransitDays"`
}

// RegionConfig defines coordinate-based regional matching parameters.
type RegionConfig struct {
	// MaxDistanceKm is the geodesic radius within which two coordinate pairs
	// count as the same region.
	MaxDistanceKm float64 `json:"maxDistanceKm" yaml:"maxDistanceKm"`
}

// RemoteConfig defines the external service endpoints.
type RemoteConfig struct {
	// AuthBaseURL is the base URL of the remote auth service. When empty the
	// local store-backed auth gateway is used instead.
	AuthBaseURL string `json:"authBaseUrl" yaml:"authBaseUrl"`

	// AssistantURL is the text-generation endpoint accepting {prompt} and
	// returning {reply}.
	AssistantURL string `json:"assistantUrl" yaml:"assistantUrl"`

	// Timeout bounds each remote call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ESCROW_DISBURSEDELAY -> escrow.disburseDelay
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if c.Store.Path == "" {
		c.Store.Path = "agriconnect.json"
	}
	if c.Escrow == nil {
		c.Escrow = &EscrowConfig{}
	}
	if c.Escrow.DisburseDelay <= 0 {
		c.Escrow.DisburseDelay = 3 * time.Second
	}
	if c.Marketplace == nil {
		c.Marketplace = &MarketplaceConfig{}
	}
	if c.Marketplace.QuantityMultiplier <= 0 {
		c.Marketplace.QuantityMultiplier = 10
	}
	if c.Marketplace.PlatformDeliveryFee <= 0 {
		c.Marketplace.PlatformDeliveryFee = 150
	}
	if c.Marketplace.PlatformTransitDays <= 0 {
		c.Marketplace.PlatformTransitDays = 3
	}
	if c.Marketplace.SelfTransitDays <= 0 {
		c.Marketplace.SelfTransitDays = 1
	}
	if c.Region == nil {
		c.Region = &RegionConfig{}
	}
	if c.Region.MaxDistanceKm <= 0 {
		c.Region.MaxDistanceKm = 100
	}
	if c.Remote == nil {
		c.Remote = &RemoteConfig{}
	}
	if c.Remote.Timeout <= 0 {
		c.Remote.Timeout = 30 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
