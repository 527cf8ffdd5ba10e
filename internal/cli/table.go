package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/domonda/go-jsontable"
	"github.com/domonda/go-jsontable/config"
	"github.com/domonda/go-jsontable/fetch"
)

const userAgent = "jsontable"

// tableFlags select the config of render and check.
type tableFlags struct {
	configPath string
	preset     string
}

func (f *tableFlags) register(flags *flag.FlagSet) {
	flags.StringVarP(&f.configPath, "config", "c", "", "Config file (.yaml, .yml, .json, .jsonc)")
	flags.StringVarP(&f.preset, "preset", "p", "", "Built-in preset instead of a config file")
}

// load returns the selected config and the directory
// that relative local sources are resolved against.
func (f *tableFlags) load(env map[string]string) (cfg *config.Config, baseDir string, err error) {
	configPath := f.configPath
	if configPath == "" && f.preset == "" {
		configPath = env[EnvConfig]
	}

	switch {
	case configPath != "" && f.preset != "":
		return nil, "", ErrConfigAndPreset
	case f.preset != "":
		cfg, err = config.Preset(f.preset)
		if err != nil {
			return nil, "", err
		}

		return cfg, "", nil
	case configPath != "":
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, "", err
		}

		return cfg, filepath.Dir(configPath), nil
	default:
		return nil, "", fmt.Errorf("%w (use --config, --preset or $%s)", ErrConfigRequired, EnvConfig)
	}
}

// resolveSource returns source relative to baseDir
// if it is a relative local path.
func resolveSource(source, baseDir string) string {
	if source == "-" || baseDir == "" || fetch.IsRemote(source) || filepath.IsAbs(source) {
		return source
	}

	return filepath.Join(baseDir, source)
}

// loadDocument reads a document from in for the source "-"
// or fetches it from a URL or local file.
func loadDocument(ctx context.Context, in io.Reader, source string) (any, error) {
	if source == "" {
		return nil, ErrSourceRequired
	}

	if source == "-" {
		if in == nil {
			return nil, fmt.Errorf("%w: no stdin", ErrSourceRequired)
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		doc, err := jsontable.DecodeDocument(data)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}

		return doc, nil
	}

	fetcher := &fetch.Fetcher{UserAgent: userAgent}

	return fetcher.Load(ctx, source)
}
