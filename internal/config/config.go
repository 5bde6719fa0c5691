package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Translate TranslateConfig `mapstructure:"translate"`
	GeoIP     GeoIPConfig     `mapstructure:"geoip"`
	Mail      MailConfig      `mapstructure:"mail"`
	Plugins   PluginsConfig   `mapstructure:"plugins"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name         string `mapstructure:"name"`
	Env          string `mapstructure:"env"`
	Port         int    `mapstructure:"port"`
	TemplatesDir string `mapstructure:"templates_dir"`
	StaticDir    string `mapstructure:"static_dir"`

	// CORSOrigins origins allowed to call the chat API, empty for any
	CORSOrigins []string `mapstructure:"cors_origins"`

	// SecureCookies marks session and CSRF cookies Secure
	SecureCookies bool `mapstructure:"secure_cookies"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres"
	Driver string `mapstructure:"driver"`

	// DSN full connection string, overrides the individual fields
	DSN string `mapstructure:"dsn"`

	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// ConnString returns the connection string for the configured driver
func (c *DatabaseConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.IsSQLite() {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=Asia/Shanghai",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// IsSQLite reports whether the sqlite dialect is selected
func (c *DatabaseConfig) IsSQLite() bool {
	return c.Driver == "" || c.Driver == "sqlite"
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	CookieName string        `mapstructure:"cookie_name"`
	Duration   time.Duration `mapstructure:"duration"`
}

type StorageConfig struct {
	// UploadRoot is the public directory holding images/, videos/ and docs/
	UploadRoot string   `mapstructure:"upload_root"`
	S3         S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`
}

// Enabled reports whether uploads should be mirrored to S3
func (c *S3Config) Enabled() bool {
	return c.Bucket != ""
}

type TranslateConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Endpoint string        `mapstructure:"endpoint"`
	Source   string        `mapstructure:"source"`
	Target   string        `mapstructure:"target"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type GeoIPConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	NotifyTo string `mapstructure:"notify_to"`
}

// Enabled reports whether inquiry notification mails are sent
func (c *MailConfig) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}

type PluginsConfig struct {
	WorkDir     string        `mapstructure:"work_dir"`
	GoBinary    string        `mapstructure:"go_binary"`
	VulnBinary  string        `mapstructure:"vuln_binary"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxOutputKB int           `mapstructure:"max_output_kb"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// IsProduction checks if app is in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment checks if app is in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error, defaults and env vars are used instead.
func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	// Bind environment variables - this allows ENV vars to override config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Name:          getEnvOrDefault("APP_NAME", v.GetString("app.name")),
			Env:           getEnvOrDefault("APP_ENV", v.GetString("app.env")),
			Port:          getEnvOrDefaultInt("PORT", getEnvOrDefaultInt("APP_PORT", v.GetInt("app.port"))),
			TemplatesDir:  getEnvOrDefault("TEMPLATES_DIR", v.GetString("app.templates_dir")),
			StaticDir:     getEnvOrDefault("STATIC_DIR", v.GetString("app.static_dir")),
			CORSOrigins:   getEnvList("CORS_ORIGINS", v.GetStringSlice("app.cors_origins")),
			SecureCookies: v.GetBool("app.secure_cookies"),
		},
		Database: DatabaseConfig{
			Driver:          getEnvOrDefault("DB_DRIVER", v.GetString("database.driver")),
			DSN:             getEnvOrDefault("DB_DSN", v.GetString("database.dsn")),
			Path:            getEnvOrDefault("DB_PATH", v.GetString("database.path")),
			Host:            getEnvOrDefault("DB_HOST", v.GetString("database.host")),
			Port:            getEnvOrDefaultInt("DB_PORT", v.GetInt("database.port")),
			User:            getEnvOrDefault("DB_USER", v.GetString("database.user")),
			Password:        getEnvOrDefault("DB_PASSWORD", v.GetString("database.password")),
			Name:            getEnvOrDefault("DB_NAME", v.GetString("database.name")),
			SSLMode:         getEnvOrDefault("DB_SSL_MODE", v.GetString("database.ssl_mode")),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Session: SessionConfig{
			Secret:     getEnvOrDefault("SESSION_SECRET", v.GetString("session.secret")),
			CookieName: getEnvOrDefault("SESSION_COOKIE", v.GetString("session.cookie_name")),
			Duration:   v.GetDuration("session.duration"),
		},
		Storage: StorageConfig{
			UploadRoot: getEnvOrDefault("UPLOAD_ROOT", v.GetString("storage.upload_root")),
			S3: S3Config{
				Bucket: getEnvOrDefault("S3_BUCKET", v.GetString("storage.s3.bucket")),
				Region: getEnvOrDefault("S3_REGION", v.GetString("storage.s3.region")),
				Prefix: getEnvOrDefault("S3_PREFIX", v.GetString("storage.s3.prefix")),
			},
		},
		Translate: TranslateConfig{
			Enabled:  v.GetBool("translate.enabled"),
			Endpoint: getEnvOrDefault("TRANSLATE_ENDPOINT", v.GetString("translate.endpoint")),
			Source:   v.GetString("translate.source"),
			Target:   v.GetString("translate.target"),
			Timeout:  v.GetDuration("translate.timeout"),
		},
		GeoIP: GeoIPConfig{
			DatabasePath: getEnvOrDefault("GEOIP_DB", v.GetString("geoip.database_path")),
		},
		Mail: MailConfig{
			Host:     getEnvOrDefault("SMTP_HOST", v.GetString("mail.host")),
			Port:     getEnvOrDefaultInt("SMTP_PORT", v.GetInt("mail.port")),
			Username: getEnvOrDefault("SMTP_USER", v.GetString("mail.username")),
			Password: getEnvOrDefault("SMTP_PASSWORD", v.GetString("mail.password")),
			From:     getEnvOrDefault("MAIL_FROM", v.GetString("mail.from")),
			NotifyTo: getEnvOrDefault("MAIL_NOTIFY_TO", v.GetString("mail.notify_to")),
		},
		Plugins: PluginsConfig{
			WorkDir:     getEnvOrDefault("PLUGINS_WORK_DIR", v.GetString("plugins.work_dir")),
			GoBinary:    v.GetString("plugins.go_binary"),
			VulnBinary:  v.GetString("plugins.vuln_binary"),
			Timeout:     v.GetDuration("plugins.timeout"),
			MaxOutputKB: v.GetInt("plugins.max_output_kb"),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", v.GetString("logging.level")),
			Format:     getEnvOrDefault("LOG_FORMAT", v.GetString("logging.format")),
			File:       getEnvOrDefault("LOG_FILE", v.GetString("logging.file")),
			MaxSizeMB:  v.GetInt("logging.max_size_mb"),
			MaxBackups: v.GetInt("logging.max_backups"),
			MaxAgeDays: v.GetInt("logging.max_age_days"),
		},
	}

	cfg.setDefaults()

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "ouma-web"
	}
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.App.TemplatesDir == "" {
		c.App.TemplatesDir = "web/templates"
	}
	if c.App.StaticDir == "" {
		c.App.StaticDir = "web/static"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/database.sqlite"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 5 * time.Minute
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "ouma_sid"
	}
	if c.Session.Duration == 0 {
		c.Session.Duration = 7 * 24 * time.Hour
	}
	if c.Storage.UploadRoot == "" {
		c.Storage.UploadRoot = "public"
	}
	if c.Translate.Endpoint == "" {
		c.Translate.Endpoint = "https://translate.googleapis.com/translate_a/single"
	}
	if c.Translate.Source == "" {
		c.Translate.Source = "auto"
	}
	if c.Translate.Target == "" {
		c.Translate.Target = "en"
	}
	if c.Translate.Timeout == 0 {
		c.Translate.Timeout = 10 * time.Second
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Plugins.WorkDir == "" {
		c.Plugins.WorkDir = "."
	}
	if c.Plugins.GoBinary == "" {
		c.Plugins.GoBinary = "go"
	}
	if c.Plugins.VulnBinary == "" {
		c.Plugins.VulnBinary = "govulncheck"
	}
	if c.Plugins.Timeout == 0 {
		c.Plugins.Timeout = 60 * time.Second
	}
	if c.Plugins.MaxOutputKB == 0 {
		c.Plugins.MaxOutputKB = 1024
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 50
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 5
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 28
	}
}

// getEnvOrDefault returns env value or default
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	// Handle ${VAR:default} pattern in defaultVal
	if strings.HasPrefix(defaultVal, "${") && strings.HasSuffix(defaultVal, "}") {
		inner := defaultVal[2 : len(defaultVal)-1]
		parts := strings.SplitN(inner, ":", 2)
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}
	return defaultVal
}

// getEnvList splits a comma separated env value, or returns defaultVal
func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvOrDefaultInt returns env value as int or default
func getEnvOrDefaultInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var intVal int
		fmt.Sscanf(val, "%d", &intVal)
		if intVal > 0 {
			return intVal
		}
	}
	if defaultVal > 0 {
		return defaultVal
	}
	return 0
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.App.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Session.Secret == "" {
		if c.App.IsProduction() {
			return fmt.Errorf("session secret is required")
		}
		c.Session.Secret = "ouma_machinery_secret_key"
	}

	return nil
}
