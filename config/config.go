// Package config loads table configurations
// that describe how a JSON document is projected into a table.
//
// A configuration can be written as YAML or as JSON with comments:
//
//	title: Projek
//	source: https://aaqil456.github.io/CryptoProject-AutoPost/dashboard.json
//	shape: direct
//	columns:
//	  - {title: Nama, field: nama}
//	  - {title: Twitter, field: twitter, render: handle-link}
//	  - {title: Tweet, field: tweet_url, render: external-link}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-jsontable"
)

var (
	ErrConfigInvalid   = errors.New("invalid config")
	ErrConfigFileRead  = errors.New("cannot read config file")
	ErrUnknownFormat   = errors.New("unknown config format")
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrUnknownPreset   = errors.New("unknown preset")
)

const (
	ShapeDirect  = "direct"
	ShapeWrapped = "wrapped"
)

// Config of a table projected from a JSON document.
type Config struct {
	// Title of the table used as caption or sheet name.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Source is the URL or local path of the document.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Shape is "direct" for a document that is an array of records
	// or "wrapped" for an object holding the records in DataField.
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty"`

	// DataField holds the records of a wrapped document.
	DataField string `json:"data_field,omitempty" yaml:"data_field,omitempty"`

	// TableID is the id of the HTML table element.
	TableID string `json:"table_id,omitempty" yaml:"table_id,omitempty"`

	Columns []ColumnConfig `json:"columns" yaml:"columns"`
}

// ColumnConfig configures one column.
type ColumnConfig struct {
	// Title of the column, defaults to Field.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Field is the dotted path of the record value.
	Field string `json:"field" yaml:"field"`

	// DefaultContent is displayed for blank values if set.
	DefaultContent *string `json:"default_content,omitempty" yaml:"default_content,omitempty"`

	// Render is the name of a renderer with an optional
	// argument after a colon like "printf:%s USD".
	Render string `json:"render,omitempty" yaml:"render,omitempty"`
}

// Table is a validated Config ready for projection.
type Table struct {
	Title   string
	Source  string
	TableID string
	Shape   jsontable.Shape
	Columns jsontable.Columns
}

// LoadFile loads a config file.
// Files with the extension .yaml or .yml are decoded as YAML,
// .json, .jsonc and .hujson files as JSON with comments.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	return cfg, nil
}

// Parse decodes a config in the passed format
// which is one of "yaml", "yml", "json", "jsonc", "hujson".
// Unknown fields are rejected.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case "json", "jsonc", "hujson":
		// Standardize JSONC to JSON
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(standardized))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &cfg, nil
}

// Validate checks the config without building it.
func (c *Config) Validate() error {
	_, err := c.Table()
	return err
}

// DocumentShape returns the jsontable.Shape of the config
// parsed with jsontable.ParseShape, so Shape may also
// be written as "wrapped:<field>" instead of using DataField.
// A wrapped shape without field uses the field "data".
func (c *Config) DocumentShape() (jsontable.Shape, error) {
	spec := strings.TrimSpace(c.Shape)
	if c.DataField != "" {
		kind, _, hasField := strings.Cut(spec, ":")
		if hasField || !strings.EqualFold(kind, ShapeWrapped) {
			return jsontable.Shape{}, fmt.Errorf("%w: data_field %q needs shape %q", ErrConfigInvalid, c.DataField, ShapeWrapped)
		}
		spec = ShapeWrapped + ":" + c.DataField
	}
	shape, err := jsontable.ParseShape(spec)
	if err != nil {
		return jsontable.Shape{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return shape, nil
}

// Table validates the config and returns it as Table
// with parsed field paths and resolved renderers.
func (c *Config) Table() (*Table, error) {
	shape, err := c.DocumentShape()
	if err != nil {
		return nil, err
	}
	if len(c.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrConfigInvalid)
	}
	columns := make(jsontable.Columns, len(c.Columns))
	for i, colCfg := range c.Columns {
		columns[i], err = colCfg.Column()
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %w", ErrConfigInvalid, i, err)
		}
	}
	return &Table{
		Title:   c.Title,
		Source:  c.Source,
		TableID: c.TableID,
		Shape:   shape,
		Columns: columns,
	}, nil
}

// Column returns the configured jsontable.Column.
func (c *ColumnConfig) Column() (jsontable.Column, error) {
	field, err := jsontable.ParsePath(c.Field)
	if err != nil {
		return jsontable.Column{}, err
	}
	render, err := NewRenderer(c.Render)
	if err != nil {
		return jsontable.Column{}, err
	}
	title := c.Title
	if title == "" {
		title = c.Field
	}
	return jsontable.Column{
		Title:          title,
		Field:          field,
		DefaultContent: c.DefaultContent,
		Render:         render,
	}, nil
}

// Format returns the config as YAML.
func (c *Config) Format() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}
	return string(data), nil
}
