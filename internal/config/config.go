// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath returns the SQLite file location, expanded.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = "$HOME/.local/share/gpgsl/gpgsl.db"
	}
	return ExpandPath(path)
}

// ForumBaseURL returns the forum root URL.
func ForumBaseURL() string {
	if v := viper.GetString("forum.base_url"); v != "" {
		return v
	}
	return "https://www.grandprixgames.org"
}

// ServerListenAddr returns the HTTP API bind address.
func ServerListenAddr() string {
	if v := viper.GetString("server.listen"); v != "" {
		return v
	}
	return ":8080"
}

// ServerCORSOrigins returns the origins allowed to call the HTTP API.
func ServerCORSOrigins() []string {
	if v := viper.GetStringSlice("server.cors_origins"); len(v) > 0 {
		return v
	}
	return []string{"http://localhost:3000"}
}
