package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in settings.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backend names accepted in settings.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// Settings holds deployment configuration loaded from datawalk.toml.
type Settings struct {
	Port    int    `toml:"port"`
	DataDir string `toml:"data_dir"`

	Cache CacheSettings `toml:"cache"`
	Store StoreSettings `toml:"store"`
}

// CacheSettings selects and configures the digit/point cache backend.
type CacheSettings struct {
	Backend   string `toml:"backend"` // file, redis or none
	Dir       string `toml:"dir"`     // file backend
	RedisAddr string `toml:"redis_addr"`
}

// StoreSettings selects and configures the walk artifact store.
type StoreSettings struct {
	Backend  string `toml:"backend"` // memory or mongo
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// DefaultSettings returns the settings used when no datawalk.toml exists.
func DefaultSettings() Settings {
	return Settings{
		Port:    8080,
		DataDir: "./data",
		Cache: CacheSettings{
			Backend: CacheBackendFile,
		},
		Store: StoreSettings{
			Backend:  StoreBackendMemory,
			Database: "datawalk",
		},
	}
}

// LoadSettings reads TOML settings from path, filling unset fields with
// defaults. A missing file is not an error; defaults apply.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("load settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("load settings %s: %w", path, err)
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.DataDir == "" {
		s.DataDir = "./data"
	}
	if s.Cache.Backend == "" {
		s.Cache.Backend = CacheBackendFile
	}
	if s.Store.Backend == "" {
		s.Store.Backend = StoreBackendMemory
	}
	return s, nil
}
