package workdays

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fridagar/fridagar/calendar"
	"github.com/fridagar/fridagar/cmd/format"
	"github.com/fridagar/fridagar/utils"
	"github.com/fridagar/fridagar/utils/log"
)

const (
	usage   = "workdays COUNT"
	short   = "Add a number of working days to a date"
	long    = "This command prints the date COUNT working days after (or, for a negative COUNT, before) a date, skipping weekends and holidays. Today is used when no date is given. Pass negative counts after \"--\"."
	example = "fridagar workdays 10 --from 2024-12-20\n  fridagar workdays -- -5"

	fromFlag     = "from"
	fromDesc     = "date to count from (YYYY-MM-DD), defaults to today"
	halfDaysFlag = "half-days"
	halfDaysDesc = "count half days such as Christmas Eve as working days"
)

var (
	// Cmd is the workdays command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"add"},
		SuggestFor: []string{"workday", "business"},
		Example:    example,
		Args:       cobra.ExactArgs(1),
		RunE:       executeWorkdays,
	}
	// from set via flag, empty for today.
	from string
	// includeHalfDays set via flag, falls back to the configuration.
	includeHalfDays bool
)

func init() {
	Cmd.Flags().StringVar(&from, fromFlag, "", fromDesc)
	Cmd.Flags().BoolVar(&includeHalfDays, halfDaysFlag, false, halfDaysDesc)
}

// executeWorkdays implements the workdays command.
func executeWorkdays(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid count %q", args[0])
	}

	ref := calendar.Today()
	if from != "" {
		if ref, err = calendar.ParseDate(from); err != nil {
			return err
		}
	}

	halfDays := utils.InstanceConfig.IncludeHalfDays
	if cmd.Flags().Changed(halfDaysFlag) {
		halfDays = includeHalfDays
	}

	cal, err := utils.InstanceConfig.Calendar()
	if err != nil {
		return err
	}

	result := cal.AddWorkdays(count, ref, halfDays)
	log.Debug("%d working days from %s is %s", count, ref, result)
	return format.Date(cmd.OutOrStdout(), utils.InstanceConfig.Format, result)
}
