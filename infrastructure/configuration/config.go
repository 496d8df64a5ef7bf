package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"yt-uploader/infrastructure/logger"

	"github.com/spf13/viper"
)

const appName = "yt-uploader"

type Config struct {
	App     App     `mapstructure:"app"`
	Storage Storage `mapstructure:"storage"`
	OAuth   OAuth   `mapstructure:"oauth"`
	Upload  Upload  `mapstructure:"upload"`
	Logger  Logger  `mapstructure:"logger"`
}

type App struct {
	Port           int           `mapstructure:"port"`
	SecretKey      string        `mapstructure:"secretKey"`
	Language       string        `mapstructure:"language"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	SessionTTL     time.Duration `mapstructure:"sessionTTL"`
}

type Storage struct {
	DataDir string `mapstructure:"dataDir"`
}

// OAuth configures the local authorization callback listener.
type OAuth struct {
	CallbackPort int           `mapstructure:"callbackPort"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type Upload struct {
	DefaultCategoryID string `mapstructure:"defaultCategoryId"`
	DefaultPrivacy    string `mapstructure:"defaultPrivacy"`
	ChunkSize         int    `mapstructure:"chunkSize"`
}

type Logger struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
	Dir    string `mapstructure:"dir"`
}

var C Config

func init() {
	// Non-destructive: OS env keeps precedence over both files.
	LoadEnvFromFile("config.env", ".env")
	LoadConfig()
	initApp(&C)
	initStorage(&C)
	initOAuth(&C)
	logger.Setup(C.Logger.Format, C.Logger.Level, C.Logger.Dir)
}

func LoadConfig() {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().WithField("config", name).Debug("Config file not found, using defaults")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := v.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 10001)
	v.SetDefault("app.language", "en")
	v.SetDefault("app.sessionTTL", 24*time.Hour)
	v.SetDefault("app.allowedOrigins", []string{"http://localhost", "http://localhost:*", "http://127.0.0.1:*", "file://"})
	v.SetDefault("oauth.callbackPort", 3000)
	v.SetDefault("oauth.timeout", 5*time.Minute)
	v.SetDefault("upload.defaultCategoryId", "22")
	v.SetDefault("upload.defaultPrivacy", "private")
	v.SetDefault("upload.chunkSize", 8*1024*1024)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.level", "debug")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if v := os.Getenv("APP_LANGUAGE"); v != "" {
		C.App.Language = v
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.SecretKey == "" {
		C.App.SecretKey = randomSecret()
		logger.GetLogger().Debug("App.SecretKey not set; generated an ephemeral session secret")
	}
}

func initStorage(C *Config) {
	if v := os.Getenv("DATA_DIR"); v != "" {
		C.Storage.DataDir = v
	}
	if C.Storage.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		C.Storage.DataDir = filepath.Join(base, appName)
	}
}

func initOAuth(C *Config) {
	if v := os.Getenv("OAUTH_CALLBACK_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.OAuth.CallbackPort = p
		}
	}
	if v := os.Getenv("OAUTH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			C.OAuth.Timeout = d
		}
	}
	if C.OAuth.CallbackPort == 0 {
		C.OAuth.CallbackPort = 3000
	}
	if C.OAuth.Timeout <= 0 {
		C.OAuth.Timeout = 5 * time.Minute
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
