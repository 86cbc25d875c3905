package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/report"
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	outputJSON = "json"
	outputText = "text"
)

var flagOutput string

var summaryCmd = &cobra.Command{
	Use:   "summary USER MONTH",
	Short: "Print the financial summary of a user for a month",
	Example: `  fintrack summary alice 2024-05
  fintrack summary alice 2024-05 --output json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fetchMonth(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		s := report.Summarize(data.Month, data.Expenses, data.Budgets)
		if flagOutput == outputJSON {
			return writeJSON(cmd.OutOrStdout(), s)
		}

		return writeSummary(cmd.OutOrStdout(), s)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report USER MONTH",
	Short: "Print the spending by category of a user for a month",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := fetchMonth(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		r := report.Categorize(data.Month, data.Expenses, data.Budgets)
		if flagOutput == outputJSON {
			return writeJSON(cmd.OutOrStdout(), r)
		}

		return writeReport(cmd.OutOrStdout(), r)
	},
}

func init() {
	for _, c := range []*cobra.Command{summaryCmd, reportCmd} {
		c.Flags().StringVarP(&flagOutput, "output", "o", outputText, "Output format, text or json")
		rootCmd.AddCommand(c)
	}
}

// fetchMonth validates the arguments and loads the month's data from the database.
func fetchMonth(cmd *cobra.Command, userID, monthParam string) (models.MonthData, error) {
	if flagOutput != outputJSON && flagOutput != outputText {
		return models.MonthData{}, fmt.Errorf("unknown output format %q, use text or json", flagOutput)
	}

	month, err := types.ParseMonth(monthParam)
	if err != nil {
		return models.MonthData{}, err
	}

	db, err := openDatabase()
	if err != nil {
		return models.MonthData{}, err
	}
	defer closeDatabase(db)

	return models.FetchMonth(cmd.Context(), db, userID, month)
}

func writeJSON(w io.Writer, v any) error {
	decimal.MarshalJSONWithoutQuotes = true

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// money formats a value with two decimal places and digit grouping.
func money(d decimal.Decimal) number.Formatter {
	return number.Decimal(d.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2))
}

func writeSummary(w io.Writer, s report.Summary) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "Month\t%s\n", s.Month)
	p.Fprintf(tw, "Expenses\t%v\t(%d)\n", money(s.TotalExpenses), s.ExpenseCount)
	p.Fprintf(tw, "Budget\t%v\t(%d)\n", money(s.TotalBudget), s.BudgetCount)
	p.Fprintf(tw, "Remaining\t%v\n", money(s.RemainingBudget))
	p.Fprintf(tw, "Used\t%v%%\n", money(s.BudgetUsagePercent))
	p.Fprintf(tw, "Status\t%s\n", s.BudgetStatus)

	return tw.Flush()
}

func writeReport(w io.Writer, r report.Report) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "CATEGORY\tAMOUNT\tCOUNT\tBUDGET\tSHARE\t\n")
	for _, category := range r.Order {
		c := r.ExpensesByCategory[category]

		marker := ""
		if c.OverBudget {
			marker = "over budget"
		}

		p.Fprintf(tw, "%s\t%v\t%d\t%v\t%v%%\t%s\n", category, money(c.TotalAmount), c.Count, money(c.Budget), money(c.Percentage), marker)
	}
	p.Fprintf(tw, "Total\t%v\t\t\t\t\n", money(r.TotalExpenses))

	if err := tw.Flush(); err != nil {
		return err
	}

	if r.TopSpendingCategory != nil {
		p.Fprintf(w, "\nTop spending category: %s (%v)\n", r.TopSpendingCategory.Category, money(r.TopSpendingCategory.Amount))
	}
	p.Fprintf(w, "%d of %d categories over budget\n", r.OverBudgetCategoriesCount, r.TotalCategories)

	return nil
}
