// Package cli is the command line front end over the same services the HTTP
// API uses. Each subcommand parses its own flag set and prints aligned text
// tables.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"jhris/internal/dto"
	"jhris/internal/service"
)

// ErrUsage reports a malformed command line. The usage text has already
// been written to the error stream.
var ErrUsage = errors.New("usage error")

// App holds what the commands need. Migrate backs the init command.
type App struct {
	Employees   service.EmployeeService
	Departments service.DepartmentService
	Reports     service.ReportService
	Migrate     func() error

	Out    io.Writer
	ErrOut io.Writer
}

const usage = `Usage: jhris <command> [arguments]

Commands:
  init                                   create or update the database schema
  employee list|add|search|update|remove manage employees
  department list|add|employees|update|delete
                                         manage departments
  report                                 headcount summary
`

// Run dispatches args (without the program name) to a subcommand.
func Run(ctx context.Context, app App, args []string) error {
	if app.Out == nil {
		app.Out = io.Discard
	}
	if app.ErrOut == nil {
		app.ErrOut = io.Discard
	}
	if len(args) == 0 {
		fmt.Fprint(app.ErrOut, usage)
		return ErrUsage
	}

	switch args[0] {
	case "init":
		return app.initDatabase()
	case "employee":
		return app.employee(ctx, args[1:])
	case "department":
		return app.department(ctx, args[1:])
	case "report":
		return app.report(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(app.Out, usage)
		return nil
	default:
		fmt.Fprintf(app.ErrOut, "unknown command %q\n\n%s", args[0], usage)
		return ErrUsage
	}
}

func (a App) initDatabase() error {
	fmt.Fprintln(a.Out, "Initializing JHRIS database...")
	if a.Migrate != nil {
		if err := a.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	fmt.Fprintln(a.Out, "Database initialized successfully!")
	return nil
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func (a App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.ErrOut)
	return fs
}

// parse treats -h like any other bad invocation: the flag package has
// already printed the defaults.
func (a App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}

func (a App) unknownAction(group, action, actions string) error {
	if action == "" {
		fmt.Fprintf(a.ErrOut, "missing %s action (%s)\n", group, actions)
	} else {
		fmt.Fprintf(a.ErrOut, "unknown %s action %q (%s)\n", group, action, actions)
	}
	return ErrUsage
}

func (a App) requireID(fs *flag.FlagSet, id uint) error {
	if id == 0 {
		fmt.Fprintf(a.ErrOut, "%s: -id is required\n", fs.Name())
		return ErrUsage
	}
	return nil
}

// visited reports which flags were given explicitly, so that updates only
// touch the fields the caller named.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// writeTable prints rows aligned under headers.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formatID(id *uint) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// departmentNames maps department ids to names for table output.
func (a App) departmentNames(ctx context.Context) (map[uint]string, error) {
	names := make(map[uint]string)
	params := dto.DefaultListParams()
	for {
		page, err := a.Departments.List(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, d := range page {
			names[d.ID] = d.Name
		}
		if len(page) < params.Limit {
			return names, nil
		}
		params.Skip += params.Limit
	}
}
