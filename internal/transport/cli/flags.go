package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/util"
)

// filterList collects repeated -filter key=value flags.
type filterList []catalog.Filter

func (f *filterList) String() string {
	parts := make([]string, 0, len(*f))
	for _, filter := range *f {
		parts = append(parts, filter.Field+"="+filter.Value)
	}
	return strings.Join(parts, ",")
}

func (f *filterList) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("filter %q must look like key=value", value)
	}
	*f = append(*f, catalog.Filter{Field: key, Value: strings.TrimSpace(val)})
	return nil
}

type queryFlags struct {
	search  string
	sort    string
	filters filterList
}

// schemaKeys are the sort and filter keys a collection understands, listed in
// the flag help.
type schemaKeys struct {
	sorts   []string
	filters []string
}

func keysOf[T any](schema catalog.Schema[T]) schemaKeys {
	return schemaKeys{sorts: schema.SortKeys(), filters: schema.FilterKeys()}
}

func (q *queryFlags) register(fs *flag.FlagSet, keys schemaKeys) {
	fs.StringVar(&q.search, "q", "", "search text")
	fs.StringVar(&q.sort, "sort", "", "sort key: "+strings.Join(keys.sorts, ", "))
	fs.Var(&q.filters, "filter", "filter as key=value, repeatable; keys: "+strings.Join(keys.filters, ", "))
}

func (q queryFlags) query() catalog.Query {
	return catalog.NewQuery(q.search, q.sort, q.filters...)
}

type listFlags struct {
	queryFlags
	limit  int
	offset int
	json   bool
}

func parseListFlags(name string, keys schemaKeys, args []string, out io.Writer) (listFlags, error) {
	var f listFlags
	fs := newFlagSet(name, out)
	f.register(fs, keys)
	fs.IntVar(&f.limit, "limit", 0, "page size (default from DEFAULT_PAGE_SIZE)")
	fs.IntVar(&f.offset, "offset", 0, "number of results to skip")
	fs.BoolVar(&f.json, "json", false, "print JSON")
	if err := parseFlags(fs, args, false); err != nil {
		return listFlags{}, err
	}
	return f, nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// parseFlags parses args and reports bad flags, bad values and, unless
// positional is set, stray arguments as ErrUsage. flag.ErrHelp passes through.
func parseFlags(fs *flag.FlagSet, args []string, positional bool) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if !positional && fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}

func (a *App) writeJSON(payload util.Envelope) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// fail reports err in the requested format and hands it back to Run.
func (a *App) fail(asJSON bool, err error) error {
	if asJSON {
		if writeErr := a.writeJSON(util.Error(Describe(err))); writeErr != nil {
			return errors.Join(err, writeErr)
		}
	}
	return err
}
