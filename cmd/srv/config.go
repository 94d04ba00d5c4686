package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/nordicmagic/backend/config"
	"github.com/nordicmagic/backend/pkg/xcontext"
)

func (s *srv) loadConfig() {
	s.configs = config.Default()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.toml"
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &s.configs); err != nil {
			panic(err)
		}
	}

	// Deployment knobs override the file.
	if v := os.Getenv("ENV"); v != "" {
		s.configs.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		s.configs.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		s.configs.ApiServer.Port = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		s.configs.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		s.configs.Database.Port = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		s.configs.Database.Database = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		s.configs.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		s.configs.Database.Password = v
	}

	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
}
