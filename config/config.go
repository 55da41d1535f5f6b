package config

import (
	"os"
	"path/filepath"
	"reflect"
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

const (
	defaultPath = "."

	defaultPort              = 3000
	defaultRefreshInterval   = 5 * time.Minute
	defaultRequestTimeout    = 10 * time.Second
	defaultLanyardBaseURL    = "https://api.lanyard.rest/v1"
	defaultDiscordAPIBaseURL = "https://discord.com/api/v10"
	defaultCDNBaseURL        = "https://cdn.discordapp.com"
	defaultStorageDir        = "."
	defaultProfilesKey       = "profiles.json"
	defaultViewsKey          = "views.json"
	defaultPublicDir         = "public"
	defaultCardTemplate      = "card.html"
	defaultPlaceholderTitle  = "<title>Neji?</title>"
	defaultSiteName          = "MNBLCK"
	defaultSiteDescription   = "View my profile on MNBLCK"
	defaultQRCodeSize        = 256
	defaultQRCodeCorrection  = "M"
	defaultLogLevel          = "info"
)

// legacyEnvAliases maps the flat variable names used by older deployments
// onto their config paths.
var legacyEnvAliases = map[string]string{
	"DISCORD_BOT_TOKEN": "discord.botToken",
	"DISCORD_USER_ID":   "discord.userId",
	"PORT":              "http.port",
}

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
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Discord DiscordConfig `json:"discord" yaml:"discord"`

	Presence PresenceConfig `json:"presence" yaml:"presence"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Site SiteConfig `json:"site" yaml:"site"`

	// QRCode configuration for profile share codes
	QRCode QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// DiscordConfig identifies the bot credential and the main profile.
type DiscordConfig struct {
	BotToken string `json:"botToken" yaml:"botToken"`
	// UserID selects the profile served by /api/profile
	UserID string `json:"userId" yaml:"userId"`
}

// PresenceConfig defines how live presence data is fetched
type PresenceConfig struct {
	// Provider: "lanyard", "discord", "none", or empty to pick discord when a bot token is set
	Provider          string        `json:"provider" yaml:"provider"`
	RefreshInterval   time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
	RequestTimeout    time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	LanyardBaseURL    string        `json:"lanyardBaseUrl" yaml:"lanyardBaseUrl"`
	DiscordAPIBaseURL string        `json:"discordApiBaseUrl" yaml:"discordApiBaseUrl"`
	CDNBaseURL        string        `json:"cdnBaseUrl" yaml:"cdnBaseUrl"`
}

// StorageConfig locates the flat JSON documents.
type StorageConfig struct {
	// BucketURL is a gocloud blob URL (file:///..., gs://..., s3://...). Dir is used when empty.
	BucketURL   string `json:"bucketUrl" yaml:"bucketUrl"`
	Dir         string `json:"dir" yaml:"dir"`
	ProfilesKey string `json:"profilesKey" yaml:"profilesKey"`
	ViewsKey    string `json:"viewsKey" yaml:"viewsKey"`
}

// SiteConfig drives static serving and the social preview card.
type SiteConfig struct {
	PublicDir          string `json:"publicDir" yaml:"publicDir"`
	CardTemplate       string `json:"cardTemplate" yaml:"cardTemplate"`
	PlaceholderTitle   string `json:"placeholderTitle" yaml:"placeholderTitle"`
	Name               string `json:"name" yaml:"name"`
	DefaultDescription string `json:"defaultDescription" yaml:"defaultDescription"`
	BaseURL            string `json:"baseUrl" yaml:"baseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads an optional .yaml file and environment variables through koanf.
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	// The file is optional; every setting has a default or an env override.
	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	schema := keyTree(reflect.TypeFor[T]())

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if alias, ok := legacyEnvAliases[k]; ok {
				return alias, v
			}

			// Example: PRESENCE_REFRESHINTERVAL -> presence.refreshInterval
			key := canonicalizeEnvKey(k, schema)

			// Unrelated variables such as ENV=production or HOME must not
			// overwrite a config section with a scalar.
			if schema != nil && !isLeafKey(schema, key) {
				return "", nil
			}

			return key, v
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "biolink"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = defaultLogLevel
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	p := &cfg.Presence
	p.Provider = strings.ToLower(strings.TrimSpace(p.Provider))
	if p.RefreshInterval <= 0 {
		p.RefreshInterval = defaultRefreshInterval
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = defaultRequestTimeout
	}
	p.LanyardBaseURL = orDefault(p.LanyardBaseURL, defaultLanyardBaseURL)
	p.DiscordAPIBaseURL = orDefault(p.DiscordAPIBaseURL, defaultDiscordAPIBaseURL)
	p.CDNBaseURL = orDefault(p.CDNBaseURL, defaultCDNBaseURL)

	s := &cfg.Storage
	s.Dir = orDefault(s.Dir, defaultStorageDir)
	s.ProfilesKey = orDefault(s.ProfilesKey, defaultProfilesKey)
	s.ViewsKey = orDefault(s.ViewsKey, defaultViewsKey)

	site := &cfg.Site
	site.PublicDir = orDefault(site.PublicDir, defaultPublicDir)
	site.CardTemplate = orDefault(site.CardTemplate, defaultCardTemplate)
	site.PlaceholderTitle = orDefault(site.PlaceholderTitle, defaultPlaceholderTitle)
	site.Name = orDefault(site.Name, defaultSiteName)
	site.DefaultDescription = orDefault(site.DefaultDescription, defaultSiteDescription)
	site.BaseURL = strings.TrimRight(site.BaseURL, "/")

	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	cfg.QRCode.ErrorCorrectionLevel = orDefault(cfg.QRCode.ErrorCorrectionLevel, defaultQRCodeCorrection)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
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

// keyTree mirrors the yaml key layout of t: struct fields become nested maps,
// everything else is a leaf.
func keyTree(t reflect.Type) map[string]any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	tree := make(map[string]any, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		fieldType := field.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct && fieldType != reflect.TypeFor[time.Time]() {
			tree[name] = keyTree(fieldType)
		} else {
			tree[name] = nil
		}
	}

	return tree
}

// isLeafKey reports whether the dotted key names a setting rather than a section.
func isLeafKey(tree map[string]any, key string) bool {
	var node any = tree
	for _, segment := range strings.Split(key, ".") {
		section, ok := node.(map[string]any)
		if !ok {
			return false
		}
		if node, ok = section[segment]; !ok {
			return false
		}
	}

	_, isSection := node.(map[string]any)

	return !isSection
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
