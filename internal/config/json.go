package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with the JSON field names an operator
// writes in a config file. Durations are given as strings ("1h30m").
type jsonConfig struct {
	App struct {
		BaseURL         string `json:"base_url"`
		PasswordHashKey string `json:"password_hash_key"`
		TokenSignKey    string `json:"token_sign_key"`
		TokenIssuer     string `json:"token_issuer"`
		TokenDuration   string `json:"token_duration"`
		ServiceKey      string `json:"service_key"`
	} `json:"app"`
	Storage struct {
		Driver string `json:"driver"`
		DSN    string `json:"database_uri"`
	} `json:"storage"`
	Mail struct {
		FunctionURL string `json:"function_url"`
		ServiceKey  string `json:"service_key"`
		Timeout     string `json:"timeout"`
	} `json:"mail"`
	Media struct {
		Endpoint      string `json:"endpoint"`
		Region        string `json:"region"`
		Bucket        string `json:"bucket"`
		AccessKey     string `json:"access_key"`
		SecretKey     string `json:"secret_key"`
		PublicBaseURL string `json:"public_base_url"`
	} `json:"media"`
	Server struct {
		Address        string `json:"address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server"`
	Workers struct {
		ScanInterval string `json:"scan_interval"`
	} `json:"workers"`
}

// parseJSON reads the JSON configuration file at path and converts it to a
// [StructuredConfig]. Returns a wrapped error when the file cannot be read,
// contains invalid JSON, or a duration string fails to parse.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file %q: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("error parsing json config file %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	cfg.App.BaseURL = jc.App.BaseURL
	cfg.App.PasswordHashKey = jc.App.PasswordHashKey
	cfg.App.TokenSignKey = jc.App.TokenSignKey
	cfg.App.TokenIssuer = jc.App.TokenIssuer
	cfg.App.ServiceKey = jc.App.ServiceKey
	cfg.Storage.DB.Driver = jc.Storage.Driver
	cfg.Storage.DB.DSN = jc.Storage.DSN
	cfg.Mail.FunctionURL = jc.Mail.FunctionURL
	cfg.Mail.ServiceKey = jc.Mail.ServiceKey
	cfg.Media.Endpoint = jc.Media.Endpoint
	cfg.Media.Region = jc.Media.Region
	cfg.Media.Bucket = jc.Media.Bucket
	cfg.Media.AccessKey = jc.Media.AccessKey
	cfg.Media.SecretKey = jc.Media.SecretKey
	cfg.Media.PublicBaseURL = jc.Media.PublicBaseURL
	cfg.Server.HTTPAddress = jc.Server.Address

	durations := []struct {
		raw  string
		name string
		dst  *time.Duration
	}{
		{jc.App.TokenDuration, "app.token_duration", &cfg.App.TokenDuration},
		{jc.Mail.Timeout, "mail.timeout", &cfg.Mail.Timeout},
		{jc.Server.RequestTimeout, "server.request_timeout", &cfg.Server.RequestTimeout},
		{jc.Workers.ScanInterval, "workers.scan_interval", &cfg.Workers.ScanInterval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("error parsing duration %s in json config: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return cfg, nil
}
