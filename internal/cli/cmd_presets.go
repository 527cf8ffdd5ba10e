package cli

import (
	"context"
	"fmt"

	"github.com/domonda/go-jsontable/config"
)

func presetsCmd() *Command {
	return &Command{
		Usage: "presets [name]",
		Short: "List built-in presets or print one as YAML",
		Long: `Without a name, list the built-in presets with their sources.
With a name, print the preset as YAML config that can be
saved to a file and edited.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			switch len(args) {
			case 0:
				for _, name := range config.PresetNames() {
					cfg, err := config.Preset(name)
					if err != nil {
						return err
					}

					o.Printf("%-16s %s\n", name, cfg.Source)
				}

				return nil
			case 1:
				cfg, err := config.Preset(args[0])
				if err != nil {
					return err
				}

				yaml, err := cfg.Format()
				if err != nil {
					return err
				}

				o.Printf("%s", yaml)

				return nil
			default:
				return fmt.Errorf("%w: %s", ErrUnexpectedArgument, args[1])
			}
		},
	}
}
