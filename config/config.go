package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath         = "."
	defaultSnapshotPath = "merchants.yaml"
	envPrefix           = "VITRINE_"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Feed configuration for merchant discovery
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Snapshot configuration for the merchant snapshot file
	Snapshot *SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// Metrics configuration for feed instrumentation
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FeedConfig defines how merchants are gated, ranked and annotated
type FeedConfig struct {
	// IANA time zone the merchant schedules are written in
	Timezone string `json:"timezone" yaml:"timezone"`

	// Days past the subscription due date a non-trial merchant stays visible
	GracePeriodDays int `json:"gracePeriodDays" yaml:"gracePeriodDays"`

	// Rating used to sort unrated merchants; when unset they sort after every rated merchant
	UnratedSortValue *float64 `json:"unratedSortValue" yaml:"unratedSortValue"`

	// Label shown instead of a rating for new merchants
	NewMerchantLabel string `json:"newMerchantLabel" yaml:"newMerchantLabel"`

	Availability *AvailabilityConfig `json:"availability" yaml:"availability"`

	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	Ranking *RankingConfig `json:"ranking" yaml:"ranking"`
}

// AvailabilityConfig defines the open/closed decision policy
type AvailabilityConfig struct {
	// Whether merchants that never set their manual open switch are open (default true)
	OpenWhenUnflagged *bool `json:"openWhenUnflagged" yaml:"openWhenUnflagged"`

	// Check yesterday's overnight window during the early hours
	ConsultPreviousDay bool `json:"consultPreviousDay" yaml:"consultPreviousDay"`
}

// DeliveryConfig defines delivery fee formatting and labels
type DeliveryConfig struct {
	CurrencySymbol      string `json:"currencySymbol" yaml:"currencySymbol"`
	DecimalSeparator    string `json:"decimalSeparator" yaml:"decimalSeparator"`
	ThousandsSeparator  string `json:"thousandsSeparator" yaml:"thousandsSeparator"`
	FreeLabel           string `json:"freeLabel" yaml:"freeLabel"`
	OnRequestLabel      string `json:"onRequestLabel" yaml:"onRequestLabel"`
	SelectLocationLabel string `json:"selectLocationLabel" yaml:"selectLocationLabel"`
}

// RankingConfig overrides the points of each search signal; zero keeps the default
type RankingConfig struct {
	ExactName     int `json:"exactName" yaml:"exactName"`
	PrefixName    int `json:"prefixName" yaml:"prefixName"`
	SubstringName int `json:"substringName" yaml:"substringName"`
	Tag           int `json:"tag" yaml:"tag"`
	Description   int `json:"description" yaml:"description"`
	WordOverlap   int `json:"wordOverlap" yaml:"wordOverlap"`
	Fuzzy         int `json:"fuzzy" yaml:"fuzzy"`
}

// SnapshotConfig defines where the merchant snapshot is read from
type SnapshotConfig struct {
	// Path to a YAML or JSON merchant snapshot
	Path string `json:"path" yaml:"path"`
}

// MetricsConfig defines Prometheus instrumentation
type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace"`
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays VITRINE_* environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Align each segment with existing YAML keys.
			// Example: VITRINE_FEED_GRACEPERIODDAYS -> feed.gracePeriodDays (not feed.graceperioddays)
			return canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Case-insensitive names so env overrides hit camelCase fields
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// findConfigFile returns the first <currEnv>.yaml found in the working directory or configPath.
// Relative entries of configPath are resolved against the working directory.
func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if !filepath.IsAbs(path) {
				path = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, path)
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Snapshot == nil {
		cfg.Snapshot = &SnapshotConfig{}
	}
	if strings.TrimSpace(cfg.Snapshot.Path) == "" {
		cfg.Snapshot.Path = defaultSnapshotPath
	}

	return cfg, nil
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
