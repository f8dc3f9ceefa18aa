package session

import (
	"context"
	"fmt"

	"spendbook/internal/chart"
	"spendbook/internal/core"
)

func (c *Controller) addExpense(ctx context.Context) error {
	line, err := c.prompt(fmt.Sprintf("Enter amount in %s: ", c.currency))
	if err != nil {
		return err
	}
	amount, err := core.ParseAmount(line)
	if err != nil {
		return err
	}

	category, err := c.chooseCategory()
	if err != nil {
		return err
	}

	date, err := c.promptDate("Enter date (yyyy-mm-dd): ")
	if err != nil {
		return err
	}

	desc, err := c.prompt("Enter description: ")
	if err != nil {
		return err
	}

	id, err := c.svc.AddExpense(ctx, core.Expense{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: desc,
	})
	if err != nil {
		return err
	}
	c.printf("Expense added (ID %d).\n", id)
	return nil
}

func (c *Controller) viewAll(ctx context.Context) error {
	expenses, err := c.svc.AllExpenses(ctx)
	if err != nil {
		return err
	}
	c.println("\nAll Expenses:")
	c.printExpenses(expenses)
	return nil
}

func (c *Controller) viewByCategory(ctx context.Context) error {
	category, err := c.chooseCategory()
	if err != nil {
		return err
	}
	expenses, err := c.svc.ExpensesByCategory(ctx, category)
	if err != nil {
		return err
	}
	c.printf("\nExpenses in category: %s\n", category)
	c.printExpenses(expenses)
	return nil
}

func (c *Controller) viewByDateRange(ctx context.Context) error {
	line, err := c.prompt("Start date (yyyy-mm-dd): ")
	if err != nil {
		return err
	}
	start, err := core.ParseDate(line)
	if err != nil {
		return err
	}
	line, err = c.prompt("End date (yyyy-mm-dd): ")
	if err != nil {
		return err
	}
	end, err := core.ParseDate(line)
	if err != nil {
		return err
	}

	expenses, err := c.svc.ExpensesByDateRange(ctx, start, end)
	if err != nil {
		return err
	}
	c.printf("\nExpenses from %s to %s\n", start, end)
	c.printExpenses(expenses)
	return nil
}

func (c *Controller) searchByDescription(ctx context.Context) error {
	keyword, err := c.prompt("Search using keyword: ")
	if err != nil {
		return err
	}
	expenses, err := c.svc.SearchExpenses(ctx, keyword)
	if err != nil {
		return err
	}
	c.println("\nMatching expenses:")
	c.printExpenses(expenses)
	return nil
}

func (c *Controller) deleteExpense(ctx context.Context) error {
	line, err := c.prompt("Enter expense ID to delete: ")
	if err != nil {
		return err
	}
	id, err := core.ParseID(line)
	if err != nil {
		return err
	}
	deleted, err := c.svc.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		c.println("Expense deleted.")
	} else {
		c.printf("No expense found with ID %d.\n", id)
	}
	return nil
}

func (c *Controller) viewTotal(ctx context.Context) error {
	total, err := c.svc.TotalSpent(ctx)
	if err != nil {
		return err
	}
	c.printf("Total spent: %s\n", c.money(total))
	return nil
}

func (c *Controller) showChart(ctx context.Context) error {
	months, err := c.svc.MonthlySummary(ctx)
	if err != nil {
		return err
	}
	if len(months) == 0 {
		c.println("No data to plot.")
		return nil
	}

	bars := make([]chart.Bar, 0, len(months))
	for _, m := range months {
		bars = append(bars, chart.Bar{Label: m.Month, Value: m.Total.Decimal()})
	}
	if err := c.chart.Render("Monthly Expenses", bars); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func (c *Controller) monthlySummary(ctx context.Context) error {
	months, err := c.svc.MonthlySummary(ctx)
	if err != nil {
		return err
	}
	if len(months) == 0 {
		c.println("No data available.")
		return nil
	}
	c.println("\nMonth-wise Summary:")
	for _, m := range months {
		c.printf("Month: %s  | Total: %s\n", m.Month, c.money(m.Total))
	}
	return nil
}

func (c *Controller) exit(context.Context) error {
	c.println("Bye bye!")
	return errExit
}

// chooseCategory lists the categories and reads a 1-based choice.
func (c *Controller) chooseCategory() (core.Category, error) {
	for i, cat := range core.Categories() {
		c.printf("%d. %s\n", i+1, cat)
	}
	line, err := c.prompt("Choose category number: ")
	if err != nil {
		return "", err
	}
	return core.CategoryFromChoice(line)
}

// promptDate asks until a valid date is entered or input ends.
func (c *Controller) promptDate(label string) (core.Date, error) {
	for {
		line, err := c.prompt(label)
		if err != nil {
			return core.Date{}, err
		}
		d, err := core.ParseDate(line)
		if err == nil {
			return d, nil
		}
		c.println("Date must be in yyyy-mm-dd format")
	}
}

func (c *Controller) money(m core.Money) string {
	return c.currency + m.String()
}
