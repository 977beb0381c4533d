package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the shape of a config
// file. The same keys are used for JSON and YAML.
type StructuredFileConfig struct {
	Session struct {
		ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
		MaxChunkSize   int      `json:"max_chunk_size" yaml:"max_chunk_size"`
		ChunkDelay     Duration `json:"chunk_delay" yaml:"chunk_delay"`
		Connect        string   `json:"connect" yaml:"connect"`
	} `json:"session,omitempty" yaml:"session,omitempty"`

	UI struct {
		MaxViews             int  `json:"max_views" yaml:"max_views"`
		DisableNotifications bool `json:"disable_notifications" yaml:"disable_notifications"`
		MessageWidthPercent  int  `json:"message_width_percent" yaml:"message_width_percent"`
	} `json:"ui,omitempty" yaml:"ui,omitempty"`

	Log struct {
		File string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`

	Aliases map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Theme   map[string]string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Session: Session{
			ConnectTimeout: time.Duration(fileCfg.Session.ConnectTimeout),
			MaxChunkSize:   fileCfg.Session.MaxChunkSize,
			ChunkDelay:     time.Duration(fileCfg.Session.ChunkDelay),
			Connect:        fileCfg.Session.Connect,
		},
		UI: UI{
			MaxViews:             fileCfg.UI.MaxViews,
			DisableNotifications: fileCfg.UI.DisableNotifications,
			MessageWidthPercent:  fileCfg.UI.MessageWidthPercent,
		},
		Log: Log{
			File: fileCfg.Log.File,
		},
		Aliases: lowerKeys(fileCfg.Aliases),
		Theme:   lowerKeys(fileCfg.Theme),
	}

	return cfg, nil
}

// lowerKeys returns m with lower-cased keys. Nil stays nil so the merge does
// not replace defaults with an empty map.
func lowerKeys(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		var n int64
		if numErr := value.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}

	*d = Duration(tmp)
	return nil
}
