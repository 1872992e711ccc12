package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/cmd/format"
	"github.com/fridagar/fridagar/utils"
)

const (
	usage   = "check [YYYY-MM-DD]"
	short   = "Check whether a date is a holiday"
	long    = "This command prints the holiday or notable day falling on a date and whether the date is a working day. Today is checked when no date is given."
	example = "fridagar check 2024-12-24 --half-days"

	halfDaysFlag = "half-days"
	halfDaysDesc = "count half days such as Christmas Eve as working days"
)

var (
	// Cmd is the check command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"is"},
		SuggestFor: []string{"holiday"},
		Example:    example,
		Args:       cobra.MaximumNArgs(1),
		RunE:       executeCheck,
	}
	// includeHalfDays set via flag, falls back to the configuration.
	includeHalfDays bool
)

func init() {
	Cmd.Flags().BoolVar(&includeHalfDays, halfDaysFlag, false, halfDaysDesc)
}

// executeCheck implements the check command.
func executeCheck(cmd *cobra.Command, args []string) error {
	cal, err := utils.InstanceConfig.Calendar()
	if err != nil {
		return err
	}

	d := calendar.Today()
	if len(args) == 1 {
		if d, err = calendar.ParseDate(args[0]); err != nil {
			return err
		}
	}

	halfDays := utils.InstanceConfig.IncludeHalfDays
	if cmd.Flags().Changed(halfDaysFlag) {
		halfDays = includeHalfDays
	}

	out := cmd.OutOrStdout()
	var entries []calendar.Entry
	if e, ok := cal.SpecialDay(d); ok {
		entries = append(entries, e)
	}

	if utils.InstanceConfig.Format != utils.FormatTable {
		return format.Entries(out, utils.InstanceConfig.Format, entries)
	}

	workday := "a working day"
	if !cal.IsWorkday(d, halfDays) {
		workday = "not a working day"
	}
	if len(entries) == 0 {
		_, err = fmt.Fprintf(out, "%s (%s) is not a holiday, %s\n", d, d.Weekday(), workday)
		return err
	}
	e := entries[0]
	_, err = fmt.Fprintf(out, "%s (%s) is %s, %s, %s\n", d, d.Weekday(), e.Name, format.Kind(e), workday)
	return err
}
