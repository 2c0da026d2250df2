package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/catalog"
)

// runExport writes the matching destinations as CSV. When an export bucket is
// configured the file is uploaded and its URL printed; otherwise it goes to
// -o, or stdout when -o is "-".
func (a *App) runExport(ctx context.Context, args []string) (err error) {
	var q queryFlags
	fs := newFlagSet("export", a.out)
	q.register(fs, keysOf(catalog.DestinationSchema()))
	name := fs.String("name", "destinations.csv", "export file name")
	output := fs.String("o", "-", "output path when not uploading")
	if err := parseFlags(fs, args, false); err != nil {
		return err
	}

	var w io.Writer = a.out
	if *output != "-" {
		f, createErr := os.Create(*output)
		if createErr != nil {
			return fmt.Errorf("create export file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = f
	}

	result, err := a.svc.Export.ExportDestinations(ctx, q.query(), *name, w)
	if err != nil {
		return err
	}
	switch {
	case result.ObjectName != "":
		fmt.Fprintf(a.out, "Uploaded %s rows to %s\n", a.count(result.Rows), result.URL)
	case *output != "-":
		fmt.Fprintf(a.out, "Wrote %s rows to %s\n", a.count(result.Rows), *output)
	default:
		a.logger.Info("destinations exported", zap.Int("rows", result.Rows))
	}
	return nil
}
