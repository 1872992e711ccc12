package days

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/cmd/format"
	"github.com/fridagar/fridagar/utils"
)

const (
	// Command
	// -------------.
	usage   = "days [holidays|other|all]"
	short   = "List the holidays and other notable days of a year"
	long    = "This command lists holidays (non-working days), other notable days (working days) or both for a year or a single month. The current year is used when none is given."
	example = "fridagar days holidays --year 2024 --month 12"

	// Flags.
	// -------------
	yearFlag  = "year"
	yearDesc  = "year to list, defaults to the current year"
	monthFlag = "month"
	monthDesc = "month to list (1-12), defaults to the whole year"
)

// Kinds of listings.
const (
	KindHolidays = "holidays"
	KindOther    = "other"
	KindAll      = "all"
)

var (
	// Cmd is the days command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"list", "ls"},
		SuggestFor: []string{"holidays", "fridagar"},
		Example:    example,
		Args:       validateArgs,
		ValidArgs:  []string{KindHolidays, KindOther, KindAll},
		RunE:       executeDays,
	}
	// year set via flag, 0 for the current year.
	year int
	// month set via flag, 0 for the whole year.
	month int
)

func init() {
	Cmd.Flags().IntVarP(&year, yearFlag, "y", 0, yearDesc)
	Cmd.Flags().IntVarP(&month, monthFlag, "m", 0, monthDesc)
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.Errorf("at most one kind of days may be given, got %d", len(args))
	}
	if len(args) == 1 {
		switch args[0] {
		case KindHolidays, KindOther, KindAll:
		default:
			return errors.Errorf("unknown kind of days %q, want holidays, other or all", args[0])
		}
	}
	if month < 0 || month > 12 {
		return errors.Errorf("month %d out of range 1-12", month)
	}
	return nil
}

// executeDays implements the days command.
func executeDays(cmd *cobra.Command, args []string) error {
	cal, err := utils.InstanceConfig.Calendar()
	if err != nil {
		return err
	}

	y := year
	if y == 0 {
		y = calendar.Today().Year
	}

	kind := KindAll
	if len(args) == 1 {
		kind = args[0]
	}

	var entries []calendar.Entry
	switch kind {
	case KindHolidays:
		entries = cal.Holidays(y, time.Month(month))
	case KindOther:
		entries = cal.OtherDays(y, time.Month(month))
	default:
		entries = cal.AllDays(y, time.Month(month))
	}

	return format.Entries(cmd.OutOrStdout(), utils.InstanceConfig.Format, entries)
}
