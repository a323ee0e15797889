package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var errInvalidMembersFile = errors.New("invalid members file")

// membersFile формат файла со свободным временем участников:
//
//	min_duration_minutes = 30
//
//	[[members]]
//	name = "alice"
//	[members.free_time]
//	monday = [["09:00", "12:00"], ["14:00", "17:00"]]
type membersFile struct {
	MinDurationMinutes *int           `toml:"min_duration_minutes"`
	Members            []memberRecord `toml:"members"`
}

type memberRecord struct {
	Name     string                `toml:"name"`
	FreeTime map[string][][]string `toml:"free_time"`
}

type overlapOptions struct {
	file        string
	day         string
	today       bool
	minDuration int
}

func NewOverlapCmd() *cobra.Command {
	var opts overlapOptions

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Print the common free time of members listed in a TOML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minOverride *int
			if cmd.Flags().Changed("min") {
				minOverride = &opts.minDuration
			}
			return runOverlap(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, minOverride, time.Now())
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "members file (TOML)")
	cmd.Flags().StringVarP(&opts.day, "day", "d", "", "day of week (default: every day)")
	cmd.Flags().BoolVar(&opts.today, "today", false, "use the current day of week")
	cmd.Flags().IntVarP(&opts.minDuration, "min", "m", domain.DefaultMinDurationMinutes, "minimum window length in minutes")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("day", "today")
	return cmd
}

func runOverlap(out, errOut io.Writer, opts overlapOptions, minOverride *int, now time.Time) error {
	var file membersFile
	if _, err := toml.DecodeFile(opts.file, &file); err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.file, err)
	}

	days, err := selectDays(opts, now)
	if err != nil {
		return err
	}

	minDuration := domain.DefaultMinDurationMinutes
	switch {
	case minOverride != nil:
		minDuration = *minOverride
	case file.MinDurationMinutes != nil:
		minDuration = *file.MinDurationMinutes
	}

	members, err := membersByDay(file.Members)
	if err != nil {
		return err
	}

	for _, day := range days {
		ranges := make([][]overlap.TimeRange, len(file.Members))
		for i := range file.Members {
			ranges[i] = members[i][day]
		}

		res, err := overlap.FindOverlapTimes(ranges, minDuration)
		if err != nil {
			return err
		}

		for _, rej := range res.Rejected {
			fmt.Fprintf(errOut, "warning: %s: %s: skipped %s: %v\n",
				file.Members[rej.Member].Name, day, rej.Interval, rej.Err)
		}

		fmt.Fprintf(out, "%s: %s\n", day, formatRanges(res.TimeRanges()))
	}

	return nil
}

func selectDays(opts overlapOptions, now time.Time) ([]domain.DayOfWeek, error) {
	if opts.today {
		return []domain.DayOfWeek{domain.DayFromWeekday(now.Weekday())}, nil
	}
	if opts.day == "" {
		return domain.AllDays(), nil
	}
	d, err := domain.ParseDayOfWeek(opts.day)
	if err != nil {
		return nil, err
	}
	return []domain.DayOfWeek{d}, nil
}

// membersByDay раскладывает свободное время каждого участника по дням
func membersByDay(records []memberRecord) ([]map[domain.DayOfWeek][]overlap.TimeRange, error) {
	result := make([]map[domain.DayOfWeek][]overlap.TimeRange, len(records))

	for i, rec := range records {
		result[i] = make(map[domain.DayOfWeek][]overlap.TimeRange, len(rec.FreeTime))

		for dayName, pairs := range rec.FreeTime {
			day, err := domain.ParseDayOfWeek(dayName)
			if err != nil {
				return nil, fmt.Errorf("%w: member %q: %v", errInvalidMembersFile, rec.Name, err)
			}

			// "Monday" и "monday" относятся к одному дню, интервалы объединяются
			ranges := result[i][day]
			for _, pair := range pairs {
				if len(pair) != 2 {
					return nil, fmt.Errorf("%w: member %q: %s: expected [start, end], got %v",
						errInvalidMembersFile, rec.Name, day, pair)
				}
				ranges = append(ranges, overlap.TimeRange{
					Start: types.TimeString(pair[0]),
					End:   types.TimeString(pair[1]),
				})
			}
			result[i][day] = ranges
		}
	}

	return result, nil
}

func formatRanges(ranges []overlap.TimeRange) string {
	if len(ranges) == 0 {
		return "-"
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = fmt.Sprintf("%s-%s", r.Start, r.End)
	}
	return strings.Join(parts, ", ")
}
