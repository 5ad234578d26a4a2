package cli

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"abicodec/config"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// ResolveFormat turns the auto format into text or json depending on
// whether stdout is a terminal.
func ResolveFormat(format string) string {
	if format != config.FormatAuto {
		return format
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return config.FormatText
	}
	return config.FormatJSON
}

func WriteDecodeResults(w io.Writer, format string, results []*DecodeResult) error {
	if ResolveFormat(format) == config.FormatJSON {
		encoder := json.NewEncoder(w)
		for _, res := range results {
			out := *res
			out.Value = ToJSON(res.Value)
			if err := encoder.Encode(out); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Value", "Consumed", "Trailing"})
	table.SetAutoWrapText(false)
	for _, res := range results {
		table.Append([]string{
			strconv.Itoa(res.Index),
			FormatValue(res.Value),
			strconv.Itoa(res.Consumed),
			strconv.Itoa(res.Trailing),
		})
	}
	table.Render()
	return nil
}

func WriteTypeNames(w io.Writer, format string, names []string) error {
	if ResolveFormat(format) == config.FormatJSON {
		return json.NewEncoder(w).Encode(names)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Type"})
	for _, name := range names {
		table.Append([]string{name})
	}
	table.Render()
	return nil
}
