// Package session implements the interactive menu loop. The controller has a
// single waiting state; every numbered option is a transition that prompts for
// its parameters, runs one service call and prints the result before
// returning to the menu.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"spendbook/internal/chart"
	"spendbook/internal/core"
	"spendbook/internal/log"
	"spendbook/internal/storage"
)

// Service is the query layer the controller drives.
type Service interface {
	AddExpense(ctx context.Context, e core.Expense) (int64, error)
	DeleteExpense(ctx context.Context, id int64) (bool, error)
	AllExpenses(ctx context.Context) ([]core.Expense, error)
	ExpensesByCategory(ctx context.Context, c core.Category) ([]core.Expense, error)
	ExpensesByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error)
	SearchExpenses(ctx context.Context, keyword string) ([]core.Expense, error)
	TotalSpent(ctx context.Context) (core.Money, error)
	MonthlySummary(ctx context.Context) ([]core.MonthTotal, error)
}

// errExit ends the loop normally.
var errExit = errors.New("exit requested")

type handlerFunc func(ctx context.Context) error

type menuItem struct {
	key   string
	label string
	run   handlerFunc
}

// Options configures presentation. Zero values fall back to defaults.
// A nil Logger is taken from the context passed to Run.
type Options struct {
	Currency string
	Chart    chart.Sink
	Logger   *log.Logger
}

// maxLineBytes bounds one line of user input. Longer lines are rejected.
const maxLineBytes = 64 << 10

type Controller struct {
	svc      Service
	in       *bufio.Reader
	out      io.Writer
	currency string
	chart    chart.Sink
	logger   *log.Logger

	items []menuItem
	byKey map[string]menuItem
}

func New(svc Service, in io.Reader, out io.Writer, opts Options) *Controller {
	c := &Controller{
		svc:      svc,
		in:       bufio.NewReader(in),
		out:      out,
		currency: opts.Currency,
		chart:    opts.Chart,
		logger:   opts.Logger,
	}
	if c.currency == "" {
		c.currency = "₹"
	}
	if c.logger != nil {
		c.logger = c.logger.WithComponent(log.ComponentSession)
	}
	if c.chart == nil {
		c.chart = chart.NewTextRenderer(out, 40, c.currency)
	}

	c.items = []menuItem{
		{"1", "Add Expense", c.addExpense},
		{"2", "View All Expenses", c.viewAll},
		{"3", "View by Category", c.viewByCategory},
		{"4", "View by Date Range", c.viewByDateRange},
		{"5", "Search by Description", c.searchByDescription},
		{"6", "Delete an Expense", c.deleteExpense},
		{"7", "View Total Expense", c.viewTotal},
		{"8", "Show Monthly Chart", c.showChart},
		{"9", "Monthly Summary", c.monthlySummary},
		{"10", "Exit", c.exit},
	}
	c.byKey = make(map[string]menuItem, len(c.items))
	for _, item := range c.items {
		c.byKey[item.key] = item
	}
	return c
}

// Run loops until the user exits or input ends. It returns an error only
// when reading input fails.
func (c *Controller) Run(ctx context.Context) error {
	if c.logger == nil {
		c.logger = log.FromContext(ctx).WithComponent(log.ComponentSession)
	}
	c.banner()
	c.logger.InfoContext(ctx, "Session started", log.FieldOperation, log.OpStartup)

	for {
		c.menu()
		choice, err := c.prompt(fmt.Sprintf("Enter your choice (from 1 to %d): ", len(c.items)))
		if core.IsValidation(err) {
			c.println("Invalid option. Try again.")
			continue
		}
		if err != nil {
			return c.finish(ctx, err)
		}

		item, ok := c.byKey[choice]
		if !ok {
			c.println("Invalid option. Try again.")
			c.logger.DebugContext(ctx, "Unknown menu choice", log.FieldChoice, choice)
			continue
		}

		c.logger.DebugContext(ctx, "Dispatching menu choice", log.FieldChoice, choice, "action", item.label)
		if err := item.run(ctx); err != nil {
			if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
				return c.finish(ctx, err)
			}
			c.report(ctx, item, err)
		}
	}
}

func (c *Controller) finish(ctx context.Context, err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		c.logger.InfoContext(ctx, "Session ended", log.FieldOperation, log.OpShutdown)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

// report prints a failed transition. Validation problems and store failures
// are reported with different messages.
func (c *Controller) report(ctx context.Context, item menuItem, err error) {
	fields := log.NewFields().With(log.FieldChoice, item.key)
	switch {
	case core.IsValidation(err):
		c.printf("Invalid input: %v\n", err)
		c.logger.DebugContext(ctx, "Input rejected",
			fields.WithError(err).WithErrorType(log.ErrorTypeValidation).ToSlice()...)
	case storage.IsStorage(err):
		c.printf("Storage error: %v\n", err)
		c.logger.LogError(ctx, "Operation failed", err, item.label,
			fields.WithErrorType(log.ErrorTypeDatabase))
	default:
		c.printf("Error: %v\n", err)
		c.logger.LogError(ctx, "Operation failed", err, item.label,
			fields.WithErrorType(log.ErrorTypeInternal))
	}
}

// prompt writes label and reads one trimmed line. It returns io.EOF once
// input is exhausted and a ValidationError for a line over maxLineBytes.
func (c *Controller) prompt(label string) (string, error) {
	c.printf("%s", label)
	line, err := c.readLine()
	if errors.Is(err, io.EOF) {
		c.println("")
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to the next newline. An overlong line is consumed in
// full so the following prompt starts on fresh input.
func (c *Controller) readLine() (string, error) {
	var (
		line    []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := c.in.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes+1 {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && read == 0 {
			return "", io.EOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		break
	}
	if tooLong {
		return "", &core.ValidationError{
			Field: "input",
			Value: fmt.Sprintf("%d bytes", read),
			Err:   core.ErrInputTooLong,
		}
	}
	return string(line), nil
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Controller) println(s string) {
	fmt.Fprintln(c.out, s)
}
