package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/domonda/go-jsontable"
	"github.com/domonda/go-jsontable/texttable"
)

func checkCmd(env map[string]string) *Command {
	var tf tableFlags

	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	tf.register(flags)

	return &Command{
		Flags: flags,
		Usage: "check [flags]",
		Short: "Validate a config and list its columns",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", ErrUnexpectedArgument, args[0])
			}

			cfg, _, err := tf.load(env)
			if err != nil {
				return err
			}

			table, err := cfg.Table()
			if err != nil {
				return err
			}

			if table.Source == "" {
				o.Warn("config has no source", "pass --source to render")
			}

			rows := make([]jsontable.Row, len(cfg.Columns))
			for i, col := range cfg.Columns {
				defaultContent := ""
				if col.DefaultContent != nil {
					defaultContent = fmt.Sprintf("%q", *col.DefaultContent)
				}

				render := col.Render
				if render == "" {
					render = "text"
				}

				rows[i] = jsontable.Row{
					{Text: table.Columns[i].Title},
					{Text: table.Columns[i].Field.String()},
					{Text: defaultContent},
					{Text: render},
				}
			}

			o.Printf("source: %s\n", table.Source)
			o.Printf("shape:  %s\n", table.Shape)

			view := &jsontable.RowsView{
				Tit:  table.Title,
				Cols: []string{"Title", "Field", "Default", "Render"},
				Rows: rows,
			}

			return texttable.NewWriter().WriteView(ctx, o, view)
		},
	}
}
