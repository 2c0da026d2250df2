package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

const browseHelp = `Commands:
  search <text>        set the search text (empty clears it)
  category <value>     beach, mountain, historical, cultural, urban, natural or all
  region <value>       region text, e.g. visayas
  filter <key> <value> set any filter
  sort <key>           rating, reviews, name, featured
  clear                reset every filter
  show                 print the current results
  quit                 leave`

// runBrowse is the destinations page driven from stdin: every line changes
// the session's query and prints the new result.
func (a *App) runBrowse(ctx context.Context, args []string) error {
	fs := newFlagSet("browse", a.out)
	region := fs.String("region", "", "initial region filter")
	if err := parseFlags(fs, args, false); err != nil {
		return err
	}

	session := a.svc.Catalog.NewDestinationSession()
	if *region != "" {
		session.Update(func(q catalog.Query) catalog.Query { return q.WithFilter(catalog.FieldRegion, *region) })
	}
	fmt.Fprintln(a.out, browseHelp)
	if err := a.printSession(session); err != nil {
		return err
	}

	lines, readErr := readLines(ctx, a.in)
	for {
		fmt.Fprint(a.out, "> ")
		var line string
		select {
		case <-ctx.Done():
			// Interrupted: leave like quit.
			fmt.Fprintln(a.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(a.out)
				return <-readErr
			}
			line = l
		}

		verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		var change func(catalog.Query) catalog.Query
		switch strings.ToLower(verb) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(a.out, browseHelp)
			continue
		case "show":
			if err := a.printSession(session); err != nil {
				return err
			}
			continue
		case "search":
			change = func(q catalog.Query) catalog.Query { return q.WithSearch(rest) }
		case "category":
			change = func(q catalog.Query) catalog.Query { return q.WithFilter(catalog.FieldCategory, rest) }
		case "region":
			change = func(q catalog.Query) catalog.Query { return q.WithFilter(catalog.FieldRegion, rest) }
		case "filter":
			key, value, _ := strings.Cut(rest, " ")
			change = func(q catalog.Query) catalog.Query { return q.WithFilter(key, strings.TrimSpace(value)) }
		case "sort":
			change = func(q catalog.Query) catalog.Query { return q.WithSort(rest) }
		case "clear":
			change = func(catalog.Query) catalog.Query { return catalog.Query{} }
		default:
			fmt.Fprintf(a.out, "unknown command %q, type help\n", verb)
			continue
		}

		if _, current := session.Update(change); !current {
			continue
		}
		if err := a.printSession(session); err != nil {
			return err
		}
	}
}

// readLines scans r on its own goroutine so the browse loop can also wait on
// ctx. The channel closes at EOF; the scan error, if any, is then sent on the
// error channel. A goroutine blocked on a terminal read outlives a cancelled
// ctx until the read returns.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (a *App) printSession(session *catalog.Session[domain.Destination]) error {
	spots, _ := session.Result()
	if err := a.renderDestinations(spots); err != nil {
		return err
	}
	a.showing("destinations", len(spots), len(spots), 0)
	return nil
}
