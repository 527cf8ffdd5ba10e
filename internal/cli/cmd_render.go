package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/domonda/go-jsontable"
	"github.com/domonda/go-jsontable/csvtable"
	"github.com/domonda/go-jsontable/datatables"
	"github.com/domonda/go-jsontable/exceltable"
	"github.com/domonda/go-jsontable/htmltable"
	"github.com/domonda/go-jsontable/texttable"
)

// Output formats of the render command.
const (
	FormatHTML = "html"
	FormatCSV  = "csv"
	FormatText = "text"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

var formats = []string{FormatHTML, FormatCSV, FormatText, FormatXLSX, FormatJSON}

// formatsByExt infers the format from the extension of --out.
var formatsByExt = map[string]string{
	".html": FormatHTML,
	".htm":  FormatHTML,
	".csv":  FormatCSV,
	".txt":  FormatText,
	".xlsx": FormatXLSX,
	".json": FormatJSON,
}

type renderOptions struct {
	format    string
	out       string
	source    string
	title     string
	tableID   string
	dataField string
	noHeader  bool
	maxWidth  int
	offset    int
	limit     int
	columns   []string
}

func renderCmd(in io.Reader, env map[string]string) *Command {
	var (
		tf   tableFlags
		opts renderOptions
	)

	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	tf.register(flags)
	flags.StringVarP(&opts.source, "source", "s", "", "Document URL or file overriding the config source, - reads stdin")
	flags.StringVarP(&opts.format, "format", "f", FormatHTML, "Output format: "+strings.Join(formats, ", "))
	flags.StringVarP(&opts.out, "out", "o", "", "Write to file instead of stdout, replaced atomically")
	flags.StringVar(&opts.title, "title", "", "Table title overriding the config title")
	flags.StringVar(&opts.tableID, "table-id", "", "HTML table id overriding the config table_id")
	flags.StringVar(&opts.dataField, "data-field", datatables.DefaultDataField, "Field holding the rows of json output")
	flags.BoolVar(&opts.noHeader, "no-header", false, "Omit the header row")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "Truncate text cells wider than this, 0 disables")
	flags.IntVar(&opts.offset, "offset", 0, "Skip this many records")
	flags.IntVar(&opts.limit, "limit", 0, "Render at most this many records, 0 renders all")
	flags.StringSliceVar(&opts.columns, "columns", nil, "Comma separated column titles to render in this order")

	return &Command{
		Flags: flags,
		Usage: "render [flags]",
		Short: "Render a JSON document as table",
		Long: `Fetch the document of a config or preset, project its records
into the configured columns and write the table.

The format defaults to html or is inferred from the --out extension.
A document without records renders an empty table with a warning.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", ErrUnexpectedArgument, args[0])
			}

			if !flags.Changed("format") && opts.out != "" {
				if format, ok := formatsByExt[strings.ToLower(filepath.Ext(opts.out))]; ok {
					opts.format = format
				}
			}

			return execRender(ctx, o, in, env, &tf, &opts)
		},
	}
}

func execRender(ctx context.Context, o *IO, in io.Reader, env map[string]string, tf *tableFlags, opts *renderOptions) error {
	opts.format = strings.ToLower(opts.format)
	if !slices.Contains(formats, opts.format) {
		return fmt.Errorf("%w %q, expected one of %s", ErrUnknownOutput, opts.format, strings.Join(formats, ", "))
	}

	if opts.maxWidth < 0 || opts.offset < 0 || opts.limit < 0 {
		return ErrNegativeNumber
	}

	if opts.dataField == "" {
		return ErrEmptyDataField
	}

	cfg, baseDir, err := tf.load(env)
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return err
	}

	source := resolveSource(table.Source, baseDir)
	if opts.source != "" {
		source = opts.source
	}

	title := table.Title
	if opts.title != "" {
		title = opts.title
	}

	tableID := table.TableID
	if opts.tableID != "" {
		tableID = opts.tableID
	}

	doc, err := loadDocument(ctx, in, source)
	if err != nil {
		return err
	}

	rowsView, err := jsontable.ProjectView(ctx, title, doc, table.Shape, table.Columns)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	if rowsView.NumRows() == 0 {
		o.Warn("document has no records", fmt.Sprintf("check that %s is a %s document", source, table.Shape))
	}

	view := &jsontable.FilteredView{Source: rowsView}
	if len(opts.columns) > 0 {
		view, err = jsontable.SelectColumns(rowsView, opts.columns...)
		if err != nil {
			return err
		}
	}

	view.RowOffset = opts.offset
	view.RowLimit = opts.limit

	var buf bytes.Buffer

	headerRow := !opts.noHeader

	switch opts.format {
	case FormatHTML:
		err = htmltable.NewWriter().
			WithHeaderRow(headerRow).
			WithTableID(tableID).
			WriteView(ctx, &buf, view)
	case FormatCSV:
		err = csvtable.NewWriter().
			WithHeaderRow(headerRow).
			WriteView(ctx, &buf, view)
	case FormatText:
		err = texttable.NewWriter().
			WithHeaderRow(headerRow).
			WithMaxWidth(opts.maxWidth).
			WriteView(ctx, &buf, view)
	case FormatXLSX:
		err = exceltable.Write(ctx, &buf, view, headerRow)
	case FormatJSON:
		err = datatables.Write(ctx, &buf, view, opts.dataField)
	}

	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = o.Write(buf.Bytes())

		return err
	}

	err = atomic.WriteFile(opts.out, &buf)
	if err != nil {
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}

	o.Printf("%s: %d rows\n", opts.out, view.NumRows())

	return nil
}
