package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	MySQL    DBConfig
	Postgres DBConfig
	Mongo    DBConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Mock     MockConfig
	NATS     NATSConfig
}

type AppConfig struct {
	Port       int
	SecretKey  string
	LogLevel   string
	Language   string
	AutoImport bool
	ImportFile string
}

type StorageConfig struct {
	Driver   string
	FilePath string
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Name     string
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type MockConfig struct {
	Seed         int64
	SeedCount    int
	ResetOnStart bool
	PrimeOnStart bool
}

type NATSConfig struct {
	URL     string
	Subject string
}

var C Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.secret_key", "change-me")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.language", "en")
	v.SetDefault("app.auto_import", false)
	v.SetDefault("app.import_file", "")

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.file_path", "data/storage.json")

	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", 27017)
	v.SetDefault("mongodb.db_name", "antifakenews")
	v.SetDefault("sqlite.path", "data/antifakenews.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "antifakenews:")

	v.SetDefault("mock.seed", 0)
	v.SetDefault("mock.seed_count", 60)
	v.SetDefault("mock.reset_on_start", false)
	v.SetDefault("mock.prime_on_start", true)

	v.SetDefault("nats.subject", "antifakenews.events")
}

func dbConfig(v *viper.Viper, section string) DBConfig {
	return DBConfig{
		User:     v.GetString(section + ".user"),
		Password: v.GetString(section + ".password"),
		Host:     v.GetString(section + ".host"),
		Port:     v.GetInt(section + ".port"),
		Name:     v.GetString(section + ".db_name"),
	}
}

// LoadConfig reads config.yaml from path. A missing file is not an error:
// defaults and ANTIFAKE_* environment variables (also read from .env) apply.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetEnvPrefix("antifake")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	C = Config{
		App: AppConfig{
			Port:       v.GetInt("app.port"),
			SecretKey:  v.GetString("app.secret_key"),
			LogLevel:   v.GetString("app.log_level"),
			Language:   v.GetString("app.language"),
			AutoImport: v.GetBool("app.auto_import"),
			ImportFile: v.GetString("app.import_file"),
		},
		Storage: StorageConfig{
			Driver:   v.GetString("storage.driver"),
			FilePath: v.GetString("storage.file_path"),
		},
		MySQL:    dbConfig(v, "mysql"),
		Postgres: dbConfig(v, "postgres"),
		Mongo:    dbConfig(v, "mongodb"),
		SQLite: SQLiteConfig{
			Path: v.GetString("sqlite.path"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			Prefix:   v.GetString("redis.prefix"),
		},
		Mock: MockConfig{
			Seed:         v.GetInt64("mock.seed"),
			SeedCount:    v.GetInt("mock.seed_count"),
			ResetOnStart: v.GetBool("mock.reset_on_start"),
			PrimeOnStart: v.GetBool("mock.prime_on_start"),
		},
		NATS: NATSConfig{
			URL:     v.GetString("nats.url"),
			Subject: v.GetString("nats.subject"),
		},
	}

	return nil
}
