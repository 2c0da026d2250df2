package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/dataset"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/service"
)

func newTestApp(t *testing.T, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	ds, err := dataset.Embedded{}.Load(context.Background())
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	catalogSvc := service.NewCatalogService(ds, service.CatalogServiceConfig{})
	svc := Services{
		Catalog:   catalogSvc,
		Dashboard: service.NewDashboardService(catalogSvc, 0),
		Booking:   service.NewBookingService(catalogSvc, nil, nil),
		Export:    service.NewExportService(catalogSvc, nil, service.ExportServiceConfig{}),
	}
	var out bytes.Buffer
	return NewApp(svc, strings.NewReader(stdin), &out, nil), &out
}

type destinationList struct {
	Destinations []domain.Destination `json:"destinations"`
	Meta         struct {
		Total  int `json:"total"`
		Count  int `json:"count"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"meta"`
}

func TestRun_DestinationsJSON(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"destinations", "-filter", "category=beach", "-sort", "name", "-json"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var payload destinationList
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if payload.Meta.Total != 2 || payload.Meta.Count != 2 || payload.Meta.Limit != 12 {
		t.Fatalf("unexpected meta %+v", payload.Meta)
	}
	if payload.Destinations[0].Name != "Boracay" || payload.Destinations[1].Name != "El Nido, Palawan" {
		t.Fatalf("expected name order, got %s, %s", payload.Destinations[0].Name, payload.Destinations[1].Name)
	}
}

func TestRun_DestinationsPagination(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"destinations", "-limit", "2", "-offset", "2"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Showing 3-4 of 6 destinations") {
		t.Fatalf("expected pagination footer, got:\n%s", out.String())
	}
}

func TestRun_NoMatches(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"destinations", "-q", "atlantis"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "No destinations match your filters.") {
		t.Fatalf("expected empty-state message, got:\n%s", out.String())
	}
}

func TestRun_AccommodationsAndActivities(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"accommodations", "-filter", "price=luxury"}); err != nil {
		t.Fatalf("accommodations returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Shangri-La Boracay") || !strings.Contains(out.String(), "Showing 1-2 of 2 accommodations") {
		t.Fatalf("unexpected accommodations output:\n%s", out.String())
	}

	out.Reset()
	if err := app.Run(context.Background(), []string{"activities", "-filter", "price=budget"}); err != nil {
		t.Fatalf("activities returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Tarsier Sanctuary Visit") || !strings.Contains(out.String(), "Showing 1-1 of 1 activities") {
		t.Fatalf("unexpected activities output:\n%s", out.String())
	}
}

func TestRun_FlagMistakesAreUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"destinations", "-nosuchflag"}, "nosuchflag"},
		{"filter without value", []string{"destinations", "-filter", "novalue"}, "key=value"},
		{"stray argument", []string{"destinations", "stray"}, `unexpected argument "stray"`},
		{"stray argument on quote", []string{"quote-stay", "-id", "1", "extra"}, `unexpected argument "extra"`},
		{"bad int", []string{"activities", "-limit", "ten"}, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, "")
			err := app.Run(context.Background(), tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Fatalf("expected ErrUsage, got %v", err)
			}
			if got := Describe(err); !strings.Contains(got, tt.want) {
				t.Fatalf("expected message to mention %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRun_HelpFlagIsNotAnError(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"destinations", "-h"})
	if !errors.Is(err, flag.ErrHelp) || errors.Is(err, ErrUsage) {
		t.Fatalf("expected flag.ErrHelp only, got %v", err)
	}
	if !strings.Contains(out.String(), "rating") || !strings.Contains(out.String(), "category") {
		t.Fatalf("expected sort and filter keys in help, got:\n%s", out.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"bookings"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if !strings.Contains(out.String(), "Usage: catalog") {
		t.Fatalf("expected usage text, got:\n%s", out.String())
	}
}

func TestRun_Dashboard(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"dashboard"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Average rating:  4.7", "Featured:        5", "Beaches", "Top destinations:"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in dashboard output:\n%s", want, text)
		}
	}
}

func TestRun_DashboardSearchJSON(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"dashboard", "-q", "bohol", "-json"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	var payload struct {
		Destinations []domain.Destination   `json:"destinations"`
		Categories   []domain.CategoryCount `json:"categories"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(payload.Destinations) != 1 || payload.Destinations[0].Name != "Chocolate Hills" {
		t.Fatalf("unexpected destinations %+v", payload.Destinations)
	}
	if payload.Categories[0].Count != 1 {
		t.Fatalf("expected all=1, got %+v", payload.Categories[0])
	}
}

func TestRun_Regions(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"regions", "-json", "visayas"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	var payload struct {
		Region       domain.Region        `json:"region"`
		Destinations []domain.Destination `json:"destinations"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload.Region.Name != "Visayas" || len(payload.Destinations) != 2 {
		t.Fatalf("unexpected region payload %+v", payload)
	}
	if payload.Destinations[0].Name != "Boracay" || payload.Destinations[1].Name != "Chocolate Hills" {
		t.Fatalf("expected rating order, got %s, %s", payload.Destinations[0].Name, payload.Destinations[1].Name)
	}

	out.Reset()
	if err := app.Run(context.Background(), []string{"regions"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Luzon") || !strings.Contains(out.String(), "Mindanao") {
		t.Fatalf("expected every region listed, got:\n%s", out.String())
	}
}

func TestRun_UnknownRegionJSON(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"regions", "-json", "atlantis"})
	if !errors.Is(err, service.ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload["error"] != "region not found" {
		t.Fatalf("unexpected error payload %v", payload)
	}
}

func TestRun_QuoteStay(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"quote-stay", "-id", "1", "-check-in", "2026-12-10", "-check-out", "2026-12-12", "-guests", "2"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Booking Confirmed!") || !strings.Contains(text, "2 nights, 2 guests") {
		t.Fatalf("unexpected quote output:\n%s", text)
	}
}

func TestPeso(t *testing.T) {
	app, _ := newTestApp(t, "")
	got := app.peso(4500)
	if !strings.Contains(got, "4500.00") {
		t.Fatalf("expected two-decimal amount, got %q", got)
	}
	if !strings.Contains(got, "₱") && !strings.Contains(got, "PHP") {
		t.Fatalf("expected peso symbol, got %q", got)
	}
}

func TestRun_QuoteStayValidation(t *testing.T) {
	app, _ := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"quote-stay", "-id", "1", "-check-in", "2026-12-10", "-check-out", "2026-12-09"})
	if !errors.Is(err, service.ErrBookingValidation) {
		t.Fatalf("expected ErrBookingValidation, got %v", err)
	}
	if got := Describe(err); got != "check-out must be after check-in" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRun_QuoteActivityJSON(t *testing.T) {
	app, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"quote-activity", "-id", "2", "-date", "2026-11-02", "-participants", "4", "-json"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	var payload struct {
		Booking domain.ActivityQuote `json:"booking"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload.Booking.Total != 1200 || payload.Booking.Activity != "Tarsier Sanctuary Visit" {
		t.Fatalf("unexpected booking %+v", payload.Booking)
	}
}

func TestRun_ExportToStdout(t *testing.T) {
	app, out := newTestApp(t, "")
	if err := app.Run(context.Background(), []string{"export", "-filter", "category=beach"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "id,name,category") {
		t.Fatalf("unexpected header %q", lines[0])
	}
}

func TestRun_Browse(t *testing.T) {
	app, out := newTestApp(t, "category beach\nsort name\nbogus\nquit\nsearch never reached\n")
	if err := app.Run(context.Background(), []string{"browse"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Showing 1-6 of 6 destinations") {
		t.Fatalf("expected initial result, got:\n%s", text)
	}
	if !strings.Contains(text, "Showing 1-2 of 2 destinations") {
		t.Fatalf("expected filtered result, got:\n%s", text)
	}
	if !strings.Contains(text, `unknown command "bogus"`) {
		t.Fatalf("expected unknown command notice, got:\n%s", text)
	}
	last := text[strings.LastIndex(text, "ID "):]
	if strings.Index(last, "Boracay") > strings.Index(last, "El Nido") {
		t.Fatalf("expected name order in last result:\n%s", last)
	}
}

func TestRun_BrowseStopsWhenCancelled(t *testing.T) {
	app, out := newTestApp(t, "")
	pr, pw := io.Pipe()
	defer pw.Close()
	app.in = pr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx, []string{"browse"}) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("browse kept waiting for input after cancel")
	}
	if !strings.Contains(out.String(), "Showing 1-6 of 6 destinations") {
		t.Fatalf("expected initial result before cancel")
	}
}

func TestFilterList(t *testing.T) {
	var f filterList
	if err := f.Set("region = visayas"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := f.Set("=beach"); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if f.String() != "region=visayas" {
		t.Fatalf("unexpected filters %q", f.String())
	}
}
