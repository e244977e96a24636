package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BotToken    string `yaml:"bot_token"`
	DBPath      string `yaml:"db_path"`
	AdminID     int64  `yaml:"admin_id"`
	GroupChatID int64  `yaml:"group_chat_id"`
	Timezone    string `yaml:"timezone"`
}

// Load reads the optional YAML file named by CONFIG_PATH, then lets
// environment variables (including a .env file) override it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   "tarbiyah.db",
		Timezone: "Asia/Jakarta",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.BotToken = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_USER_ID: %w", err)
		}
		cfg.AdminID = id
	}
	if v := os.Getenv("GROUP_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GROUP_CHAT_ID: %w", err)
		}
		cfg.GroupChatID = id
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token not set (BOT_TOKEN or bot_token in %s)", os.Getenv("CONFIG_PATH"))
	}
	if cfg.GroupChatID == 0 {
		return nil, fmt.Errorf("group chat id not set")
	}
	return cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
