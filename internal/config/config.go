package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

func Load(configFile string) *Config {
	// Local development keeps credentials in a .env next to the binary.
	godotenv.Load()

	c := &Config{
		Server:   ServerConfig{Port: 9872},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Database: DatabaseConfig{Host: "127.0.0.1", Port: 3306, Name: "club_portal"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/club-portal/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Server.JWTSecret, "JWT_SECRET")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
