package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Schedule ScheduleConfig
	Admin    AdminConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Port        string
	Env         string
	BaseURL     string
	Timezone    string
	LogLevel    string
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// StorageConfig selects the disk used for uploaded images.
// Driver is either "local" or "s3".
type StorageConfig struct {
	Driver    string
	LocalRoot string
	PublicURL string
	S3Bucket  string
	S3Region  string
	// S3Endpoint overrides the AWS endpoint, e.g. for MinIO.
	S3Endpoint string
}

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSize          int64
}

type ScheduleConfig struct {
	// DayNames maps English weekday names to their localized alias.
	DayNames map[string]string
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type CacheConfig struct {
	TTL time.Duration
}

// DefaultDayNames is the Indonesian weekday table used when none is configured.
var DefaultDayNames = map[string]string{
	"Sunday":    "Minggu",
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_LOCAL_ROOT", "storage/app/public")
	viper.SetDefault("UPLOAD_ALLOWED_MIME_TYPES", "image/jpeg,image/png,image/gif")
	viper.SetDefault("UPLOAD_MAX_SIZE", 2<<20)
	viper.SetDefault("CACHE_TTL", "10m")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	// A missing .env file is fine, the environment alone may carry everything.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 10 * time.Minute
	}

	baseURL := strings.TrimRight(viper.GetString("APP_BASE_URL"), "/")
	publicURL := viper.GetString("STORAGE_PUBLIC_URL")
	if publicURL == "" {
		publicURL = baseURL + "/storage"
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			BaseURL:     baseURL,
			Timezone:    viper.GetString("APP_TIMEZONE"),
			LogLevel:    viper.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(viper.GetString("STORAGE_DRIVER")),
			LocalRoot:  viper.GetString("STORAGE_LOCAL_ROOT"),
			PublicURL:  strings.TrimRight(publicURL, "/"),
			S3Bucket:   viper.GetString("STORAGE_S3_BUCKET"),
			S3Region:   viper.GetString("STORAGE_S3_REGION"),
			S3Endpoint: viper.GetString("STORAGE_S3_ENDPOINT"),
		},
		Upload: UploadConfig{
			AllowedMimeTypes: splitList(viper.GetString("UPLOAD_ALLOWED_MIME_TYPES")),
			MaxSize:          viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		Schedule: ScheduleConfig{
			DayNames: ParseDayNames(viper.GetString("SCHEDULE_DAY_NAMES")),
		},
		Admin: AdminConfig{
			Name:     viper.GetString("ADMIN_NAME"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
	}

	return config, nil
}

// ParseDayNames reads a "Monday=Senin,Tuesday=Selasa" list. Days left out
// of the list keep their default alias.
func ParseDayNames(raw string) map[string]string {
	names := make(map[string]string, len(DefaultDayNames))
	for english, localized := range DefaultDayNames {
		names[english] = localized
	}

	for _, pair := range splitList(raw) {
		english, localized, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		english = strings.TrimSpace(english)
		localized = strings.TrimSpace(localized)
		if english == "" || localized == "" {
			continue
		}
		names[english] = localized
	}

	return names
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
