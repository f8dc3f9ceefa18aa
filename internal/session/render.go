package session

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"spendbook/internal/core"
)

func (c *Controller) banner() {
	rule := strings.Repeat("=", 72)
	c.println(rule)
	c.println("                    Welcome to the Personal Expense Tracker")
	c.println(rule)
}

func (c *Controller) menu() {
	c.println("\nOptions:")
	for _, item := range c.items {
		c.printf("%s. %s\n", item.key, item.label)
	}
}

// cellText keeps a description inside its table cell.
var cellText = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// printExpenses renders expenses as an aligned table.
func (c *Controller) printExpenses(expenses []core.Expense) {
	if len(expenses) == 0 {
		c.println("No expenses to show")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, "ID\t| Amount\t| Category\t| Date\t| Description")
	fmt.Fprintln(tw, "--\t| ------\t| --------\t| ----\t| -----------")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t| %s\t| %s\t| %s\t| %s\n", e.ID, c.money(e.Amount), e.Category, e.Date, cellText.Replace(e.Description))
	}
	tw.Flush()
}
