package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tw "github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/expectkit/expect/chrono"
	"github.com/expectkit/expect/log"
)

// chronocmp compares two ISO date-times the way the assertion library does,
// for picking apart failing time assertions outside a test run. The second
// operand is re-expressed in the first operand's zone before any field
// comparison, matching the library's actual-relative normalization rule.

var errp log.ErrorPrinter = &log.StderrErrorPrinter{}

func granularityRows(actual, otherInZone time.Time) [][]string {
	checks := []struct {
		name string
		eq   func(a, b time.Time) bool
	}{
		{"same instant", chrono.SameInstant},
		{"equal ignoring nanos", chrono.EqualIgnoringNanos},
		{"equal ignoring seconds", chrono.EqualIgnoringSeconds},
		{"equal ignoring minutes", chrono.EqualIgnoringMinutes},
		{"equal ignoring hours", chrono.SameDate},
		{"same year and month", chrono.SameYearMonth},
		{"same year", chrono.SameYear},
	}

	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		rows = append(rows, []string{c.name, equalStr(c.eq(actual, otherInZone))})
	}
	return rows
}

func equalStr(eq bool) string {
	if eq {
		return "equal"
	}
	return "differs"
}

func orderingStr(actual, other time.Time) string {
	switch {
	case actual.Before(other):
		return "actual is strictly before other"
	case actual.After(other):
		return "actual is strictly after other"
	default:
		return "actual and other are the same instant"
	}
}

// deltaSeconds is the exact signed difference other-actual in seconds,
// computed in decimal so sub-second fractions don't pick up float error.
func deltaSeconds(actual, other time.Time) decimal.Decimal {
	nanos := decimal.NewFromInt(other.UnixNano() - actual.UnixNano())
	return nanos.Div(decimal.NewFromInt(1000000000))
}

func runRootCmd(cmd *cobra.Command, args []string) {
	actual, err := chrono.ParseZoned(args[0])
	if err != nil {
		errp.F("Error parsing ACTUAL: %v\n", err)
		os.Exit(1)
	}
	other, err := chrono.ParseZoned(args[1])
	if err != nil {
		errp.F("Error parsing OTHER: %v\n", err)
		os.Exit(1)
	}

	otherInZone := other.In(actual.Location())
	log.Verbosef("actual: %s\n", actual.Format(chrono.ZonedFormat))
	log.Verbosef("other in actual's zone: %s\n", otherInZone.Format(chrono.ZonedFormat))

	table := tw.NewWriter(os.Stdout)
	table.SetHeader([]string{"Comparison", "Result"})
	table.SetBorder(false)
	for _, row := range granularityRows(actual, otherInZone) {
		table.Append(row)
	}
	table.Render()

	fmt.Println(orderingStr(actual, other))
	fmt.Printf("difference (other - actual): %ss\n", deltaSeconds(actual, other).String())
}

func cmdName() string {
	return filepath.Base(os.Args[0])
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   cmdName() + " ACTUAL OTHER",
	Short: "Compare two ISO date-times at every assertion granularity",
	Long: `Compares two ISO-8601 date-times the way the expect assertion library
does: OTHER is first re-expressed in ACTUAL's timezone, then the two are
compared at every truncation granularity, by ordering, and by exact
sub-second difference.

Accepted format is an RFC 3339 date-time with optional fractional seconds
and offset, optionally followed by a bracketed IANA zone id:

  2011-12-03T10:15:30+01:00[Europe/Paris]`,
	Run:     runRootCmd,
	Args:    cobra.ExactArgs(2),
	Version: "0.1.0",
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&log.VerboseEnabled, "verbose", "v", false,
		"Print verbose output")
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
