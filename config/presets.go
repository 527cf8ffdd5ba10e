package config

import (
	"fmt"
	"sort"
)

// DashboardURL is the published array of project records.
const DashboardURL = "https://aaqil456.github.io/CryptoProject-AutoPost/dashboard.json"

func dash() *string {
	s := "-"
	return &s
}

// presets returns new instances for every call
// so callers can modify them.
var presets = map[string]func() *Config{
	// Flat records with fields at the top level.
	"flat": func() *Config {
		return &Config{
			Title:   "Projek",
			Source:  DashboardURL,
			Shape:   ShapeDirect,
			TableID: "dashboard",
			Columns: []ColumnConfig{
				{Title: "Nama", Field: "nama"},
				{Title: "Dana", Field: "dana"},
				{Title: "Fasa", Field: "fasa"},
				{Title: "Ada Token", Field: "ada_token"},
				{Title: "Pelabur", Field: "pelabur"},
				{Title: "Deskripsi", Field: "deskripsi"},
				{Title: "Twitter", Field: "twitter", Render: "handle-link"},
				{Title: "Tweet", Field: "tweet_url", Render: "external-link"},
			},
		}
	},
	// Flat records where blank text fields show "-".
	"flat-defaults": func() *Config {
		return &Config{
			Title:   "Projek",
			Source:  DashboardURL,
			Shape:   ShapeDirect,
			TableID: "dashboard",
			Columns: []ColumnConfig{
				{Title: "Nama", Field: "nama", DefaultContent: dash()},
				{Title: "Dana", Field: "dana", DefaultContent: dash()},
				{Title: "Fasa", Field: "fasa", DefaultContent: dash()},
				{Title: "Ada Token", Field: "ada_token", DefaultContent: dash()},
				{Title: "Pelabur", Field: "pelabur", DefaultContent: dash()},
				{Title: "Deskripsi", Field: "deskripsi", DefaultContent: dash()},
				{Title: "Twitter", Field: "twitter", Render: "handle-link"},
				{Title: "Tweet", Field: "tweet_url", Render: "external-link"},
			},
		}
	},
	// Collected tweets wrapped in a "data" field with the
	// extracted project fields nested under "dashboard".
	// The tweet URL is read from the top level of the record.
	"dashboard": func() *Config {
		return &Config{
			Title:     "Projek",
			Source:    "results.json",
			Shape:     ShapeWrapped,
			DataField: "data",
			TableID:   "dashboard",
			Columns: []ColumnConfig{
				{Title: "Nama", Field: "dashboard.nama", DefaultContent: dash()},
				{Title: "Dana", Field: "dashboard.dana", DefaultContent: dash()},
				{Title: "Fasa", Field: "dashboard.fasa", DefaultContent: dash()},
				{Title: "Ada Token", Field: "dashboard.ada_token", DefaultContent: dash()},
				{Title: "Pelabur", Field: "dashboard.pelabur", DefaultContent: dash()},
				{Title: "Deskripsi", Field: "dashboard.deskripsi", DefaultContent: dash()},
				{Title: "Twitter", Field: "dashboard.twitter", Render: "handle-link"},
				{Title: "Tweet", Field: "tweet_url", Render: "external-link"},
			},
		}
	},
}

// Preset returns a new instance of a built-in config.
func Preset(name string) (*Config, error) {
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return preset(), nil
}

// PresetNames returns the sorted names of the built-in configs.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
