package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultAuthTimeout        = 5 * time.Second
	defaultNotifyTimeout      = 5 * time.Second
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultMaxUploadBytes     = 10 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		// AutoMigrate creates or alters the content tables on start-up.
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log  `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicURL is the externally visible origin, used for absolute links.
		PublicURL string `json:"publicURL" yaml:"publicURL"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Routes *RoutesConfig `json:"routes" yaml:"routes"`

	Locale *LocaleConfig `json:"locale" yaml:"locale"`

	AuthProvider *AuthProviderConfig `json:"authProvider" yaml:"authProvider"`

	// Storage configuration for the uploads bucket
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Notification configuration for contact-form lead delivery
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	Setup *SetupConfig `json:"setup" yaml:"setup"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables rotated file output in addition to stdout.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
}

// RoutesConfig holds the path constants the request gateway classifies against.
type RoutesConfig struct {
	Dashboard string `json:"dashboard" yaml:"dashboard"`
	Login     string `json:"login" yaml:"login"`
	API       string `json:"api" yaml:"api"`
	Setup     string `json:"setup" yaml:"setup"`
	// Internal is the prefix for health, metrics and other server-owned endpoints.
	Internal string `json:"internal" yaml:"internal"`
}

// LocaleConfig defines the closed set of site languages.
type LocaleConfig struct {
	Supported []string `json:"supported" yaml:"supported"`
	Default   string   `json:"default" yaml:"default"`
	RTL       []string `json:"rtl" yaml:"rtl"`
	// Negotiate lets Accept-Language pick the locale for unprefixed paths.
	Negotiate bool `json:"negotiate" yaml:"negotiate"`
}

// AuthProviderConfig defines the hosted authentication backend.
type AuthProviderConfig struct {
	// Provider type: "gotrue" for GoTrue-compatible REST or "firebase" for Firebase Auth
	Provider string `json:"provider" yaml:"provider"`

	URL     string `json:"url" yaml:"url"`
	AnonKey string `json:"anonKey" yaml:"anonKey"`

	// Web API key used for Firebase password sign-in
	APIKey          string `json:"apiKey" yaml:"apiKey"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Timeout bounds every verification call to the provider
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	AccessCookie  string        `json:"accessCookie" yaml:"accessCookie"`
	RefreshCookie string        `json:"refreshCookie" yaml:"refreshCookie"`
	SecureCookies bool          `json:"secureCookies" yaml:"secureCookies"`
	SessionTTL    time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
}

// StorageConfig defines the object storage bucket for uploaded media.
type StorageConfig struct {
	// BucketURL is a gocloud blob URL, e.g. file:///var/lib/atelier/uploads, gs://bucket, s3://bucket
	BucketURL     string `json:"bucketURL" yaml:"bucketURL"`
	Prefix        string `json:"prefix" yaml:"prefix"`
	PublicBaseURL string `json:"publicBaseURL" yaml:"publicBaseURL"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// NotificationConfig defines where new contact-form leads are announced
type NotificationConfig struct {
	// Provider type: "webhook" for an HTTP POST, "google" for Google Pub/Sub
	// or "fcm" for a Firebase Cloud Messaging topic push
	Provider string `json:"provider" yaml:"provider"`

	WebhookURL string `json:"webhookURL" yaml:"webhookURL"`

	ProjectID       string `json:"projectId" yaml:"projectId"`
	TopicID         string `json:"topicId" yaml:"topicId"`
	FCMTopic        string `json:"fcmTopic" yaml:"fcmTopic"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SetupConfig controls the one-time credential bootstrap endpoints.
type SetupConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// TokenHash is the bcrypt hash of the X-Setup-Token value
	TokenHash string `json:"tokenHash" yaml:"tokenHash"`
	EnvFile   string `json:"envFile" yaml:"envFile"`
}

// QRCodeConfig defines QR code generation for office cards
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type RateLimitConfig struct {
	// ContactPerSecond is the per-IP rate for contact form submissions
	ContactPerSecond float64 `json:"contactPerSecond" yaml:"contactPerSecond"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML. Each segment is aligned with an existing
	// key so AUTHPROVIDER_ANONKEY lands on authProvider.anonKey.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// New assembles the process configuration once at start-up.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills empty sections with the values the site ships with.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}

	if cfg.Routes == nil {
		cfg.Routes = &RoutesConfig{}
	}
	setDefault(&cfg.Routes.Dashboard, "/dashboard")
	setDefault(&cfg.Routes.Login, "/login")
	setDefault(&cfg.Routes.API, "/api")
	setDefault(&cfg.Routes.Setup, "/setup")
	setDefault(&cfg.Routes.Internal, "/_internal")

	if cfg.Locale == nil {
		cfg.Locale = &LocaleConfig{}
	}
	if len(cfg.Locale.Supported) == 0 {
		cfg.Locale.Supported = []string{"en", "ar"}
		if cfg.Locale.RTL == nil {
			cfg.Locale.RTL = []string{"ar"}
		}
	}
	setDefault(&cfg.Locale.Default, cfg.Locale.Supported[0])

	if cfg.AuthProvider == nil {
		cfg.AuthProvider = &AuthProviderConfig{}
	}
	setDefault(&cfg.AuthProvider.Provider, "gotrue")
	setDefault(&cfg.AuthProvider.AccessCookie, "sb-access-token")
	setDefault(&cfg.AuthProvider.RefreshCookie, "sb-refresh-token")
	if cfg.AuthProvider.Timeout <= 0 {
		cfg.AuthProvider.Timeout = defaultAuthTimeout
	}
	if cfg.AuthProvider.SessionTTL <= 0 {
		cfg.AuthProvider.SessionTTL = defaultSessionTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	setDefault(&cfg.Storage.BucketURL, "mem://")
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadBytes
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Timeout <= 0 {
		cfg.Notification.Timeout = defaultNotifyTimeout
	}

	if cfg.Setup == nil {
		cfg.Setup = &SetupConfig{}
	}
	setDefault(&cfg.Setup.EnvFile, ".env.local")

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.ContactPerSecond <= 0 {
		cfg.RateLimit.ContactPerSecond = 0.2
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
}

// Validate rejects configurations the gateway cannot run with.
func (cfg *Config) Validate() error {
	found := false
	for _, tag := range cfg.Locale.Supported {
		if tag == cfg.Locale.Default {
			found = true

			break
		}
	}
	if !found {
		return errors.Errorf("default locale %q is not in supported locales %v", cfg.Locale.Default, cfg.Locale.Supported)
	}

	for name, path := range map[string]string{
		"dashboard": cfg.Routes.Dashboard,
		"login":     cfg.Routes.Login,
		"api":       cfg.Routes.API,
		"setup":     cfg.Routes.Setup,
		"internal":  cfg.Routes.Internal,
	} {
		if !strings.HasPrefix(path, "/") {
			return errors.Errorf("routes.%s must start with '/': %q", name, path)
		}
	}

	if cfg.Setup.Enabled && cfg.Setup.TokenHash == "" {
		return errors.New("setup.tokenHash is required when setup is enabled")
	}

	return nil
}

func setDefault(target *string, value string) {
	if strings.TrimSpace(*target) == "" {
		*target = value
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

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
