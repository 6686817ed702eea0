package inspect

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var reportHeaders = []string{"NAME", "ARITY", "TUPLE", "ZERO", "WITHIN MARGIN", "HASH"} //nolint:gochecknoglobals

func (r Report) row() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Arity),
		r.Text,
		strconv.FormatBool(r.Zero),
		strconv.FormatBool(r.WithinMargin),
		r.Hash,
	}
}

// RenderTable lays out rows as a borderless, left-aligned table.
func RenderTable(headers []string, data [][]string) string {
	str := &strings.Builder{}

	cellCfg := tw.CellConfig{
		Formatting: tw.CellFormatting{
			AutoWrap:  tw.WrapNormal,
			Alignment: tw.AlignLeft,
		},
		Padding: tw.CellPadding{Global: tw.Padding{Right: "    "}},
	}
	cfg := tablewriter.Config{
		Row:    cellCfg,
		Header: cellCfg,
	}
	rendition := tw.Rendition{
		Borders: tw.BorderNone,
		Settings: tw.Settings{
			Lines:      tw.LinesNone,
			Separators: tw.SeparatorsNone,
		},
	}

	table := tablewriter.NewTable(str,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition)),
		tablewriter.WithConfig(cfg),
	)
	table.Header(headers)

	if err := table.Bulk(data); err != nil {
		slog.Error("Error in adding bulk data to table", "error", err)

		return "Error"
	}

	if err := table.Render(); err != nil {
		slog.Error("Error in table rendering", "error", err)

		return "Error"
	}

	return str.String()
}
