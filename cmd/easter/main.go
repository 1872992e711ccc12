package easter

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/cmd/format"
	"github.com/fridagar/fridagar/utils"
)

const (
	usage   = "easter [YEAR]"
	short   = "Print the date of Easter Sunday"
	long    = "This command prints the date of Easter Sunday in a Gregorian year, the current year when none is given."
	example = "fridagar easter 2027"
)

var (
	// Cmd is the easter command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		SuggestFor: []string{"paskar", "computus"},
		Example:    example,
		Args:       cobra.MaximumNArgs(1),
		RunE:       executeEaster,
	}
)

// executeEaster implements the easter command.
func executeEaster(cmd *cobra.Command, args []string) error {
	year := calendar.Today().Year
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "invalid year %q", args[0])
		}
		year = y
	}
	return format.Date(cmd.OutOrStdout(), utils.InstanceConfig.Format, calendar.Easter(year))
}
