package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Pass         string
	Name         string
	Path         string
	MaxIdleConns int
	MaxOpenConns int
}

type JWT struct {
	Secret   string
	Issuer   string
	ExpHours int
}

type CORS struct {
	Origin string
}

type Config struct {
	Env    string
	Server Server
	DB     DB
	JWT    JWT
	CORS   CORS
}

func (c *Config) IsProd() bool { return c.Env == "production" }

// Load reads configuration from an optional YAML file, with environment
// variables (BLOG_*) overriding file values and defaults filling the rest.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "development")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "miniblog")
	v.SetDefault("db.path", "miniblog.db")
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "miniblog")
	v.SetDefault("jwt.exp_hours", 24)
	v.SetDefault("cors.origin", "http://localhost:3000")

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Env:    v.GetString("env"),
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver:       v.GetString("db.driver"),
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Pass:         v.GetString("db.pass"),
			Name:         v.GetString("db.name"),
			Path:         v.GetString("db.path"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		JWT:  JWT{Secret: v.GetString("jwt.secret"), Issuer: v.GetString("jwt.issuer"), ExpHours: v.GetInt("jwt.exp_hours")},
		CORS: CORS{Origin: v.GetString("cors.origin")},
	}
	if cfg.JWT.ExpHours <= 0 {
		cfg.JWT.ExpHours = 24
	}
	return cfg, nil
}
