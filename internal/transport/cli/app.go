// Package cli is the terminal front end of the catalog. Each subcommand
// parses its own flags, calls one service, and renders either a table or a
// JSON envelope.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/service"
)

// ErrUsage reports an unknown subcommand or missing arguments. Usage has
// already been printed when it is returned.
var ErrUsage = errors.New("usage")

type Services struct {
	Catalog   *service.CatalogService
	Dashboard *service.DashboardService
	Booking   *service.BookingService
	Export    *service.ExportService
}

type App struct {
	svc     Services
	in      io.Reader
	out     io.Writer
	printer *message.Printer
	logger  *zap.Logger
}

func NewApp(svc Services, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &App{
		svc:     svc,
		in:      in,
		out:     out,
		printer: message.NewPrinter(language.English),
		logger:  logger,
	}
}

type command struct {
	name    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"destinations", "list tourist spots", (*App).runDestinations},
	{"accommodations", "list places to stay", (*App).runAccommodations},
	{"activities", "list tours and activities", (*App).runActivities},
	{"dashboard", "catalog statistics and quick search", (*App).runDashboard},
	{"regions", "list island groups, or the spots in one", (*App).runRegions},
	{"browse", "interactive destination search from stdin", (*App).runBrowse},
	{"quote-stay", "price an accommodation booking", (*App).runQuoteStay},
	{"quote-activity", "price an activity booking", (*App).runQuoteActivity},
	{"export", "write destinations as CSV", (*App).runExport},
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}
	name := args[0]
	for _, cmd := range commands {
		if cmd.name == name {
			a.logger.Debug("command started", zap.String("command", name), zap.Strings("args", args[1:]))
			return cmd.run(a, ctx, args[1:])
		}
	}
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return nil
	}
	fmt.Fprintf(a.out, "unknown command %q\n\n", name)
	a.usage()
	return ErrUsage
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: catalog <command> [flags]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(a.out, "  %-16s %s\n", cmd.name, cmd.summary)
	}
}

// Describe turns a service error into the message shown to the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, service.ErrDestinationNotFound):
		return "destination not found"
	case errors.Is(err, service.ErrAccommodationNotFound):
		return "accommodation not found"
	case errors.Is(err, service.ErrActivityNotFound):
		return "activity not found"
	case errors.Is(err, service.ErrRegionNotFound):
		return "region not found"
	case errors.Is(err, service.ErrBookingValidation):
		return strings.TrimPrefix(err.Error(), service.ErrBookingValidation.Error()+": ")
	case errors.Is(err, ErrUsage):
		return strings.TrimPrefix(err.Error(), ErrUsage.Error()+": ")
	case errors.Is(err, service.ErrExportNoTarget):
		return "nowhere to write the export"
	default:
		return err.Error()
	}
}
