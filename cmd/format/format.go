// Package format prints day entries in the output formats of the command
// line tool.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/utils"
)

type row struct {
	Date    string `csv:"date"`
	Weekday string `csv:"weekday"`
	Name    string `csv:"name"`
	Holiday bool   `csv:"holiday"`
	HalfDay bool   `csv:"half_day"`
}

func toRow(e calendar.Entry) row {
	return row{
		Date:    e.Date.String(),
		Weekday: e.Date.Weekday().String(),
		Name:    e.Name,
		Holiday: e.Holiday,
		HalfDay: e.HalfDay,
	}
}

// Kind names the classification of e.
func Kind(e calendar.Entry) string {
	switch {
	case e.HalfDay:
		return "half day"
	case e.Holiday:
		return "holiday"
	default:
		return "observance"
	}
}

// Entries writes entries to w in the given format.
func Entries(w io.Writer, format string, entries []calendar.Entry) error {
	switch format {
	case utils.FormatJSON:
		if entries == nil {
			entries = []calendar.Entry{}
		}
		return writeJSON(w, entries)
	case utils.FormatCSV:
		rows := make([]row, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, toRow(e))
		}
		if err := gocsv.Marshal(rows, w); err != nil {
			return errors.Wrap(err, "failed to write csv")
		}
		return nil
	case utils.FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tWEEKDAY\tNAME\tTYPE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Date, e.Date.Weekday(), e.Name, Kind(e))
		}
		return tw.Flush()
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// Date writes a single date to w in the given format.
func Date(w io.Writer, format string, d calendar.Date) error {
	switch format {
	case utils.FormatJSON:
		return writeJSON(w, map[string]calendar.Date{"date": d})
	case utils.FormatCSV, utils.FormatTable:
		_, err := fmt.Fprintln(w, d)
		return err
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to write json")
	}
	return nil
}
