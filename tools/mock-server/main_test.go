package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *catalog {
	t.Helper()
	fixture, err := loadFixture(filepath.Join("testdata", "catalog.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fixture
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newMux(testLogger(), loadTestFixture(t), newBookingStore()))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Deals) == 0 {
		t.Fatal("expected deals in fixture")
	}
	if len(fixture.ProtectionPackages) == 0 {
		t.Fatal("expected protection packages in fixture")
	}
	if len(fixture.Addons) == 0 {
		t.Fatal("expected addons in fixture")
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := loadFixture(filepath.Join("testdata", "missing.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestSixtClientRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	fixture := loadTestFixture(t)
	client := datasource.NewSixtClient(srv.URL)
	ctx := context.Background()

	b, err := client.CreateBooking(ctx)
	if err != nil {
		t.Fatalf("creating booking: %v", err)
	}
	if b.ID == "" {
		t.Fatal("expected booking id")
	}

	got, err := client.GetBooking(ctx, b.ID)
	if err != nil {
		t.Fatalf("getting booking: %v", err)
	}
	if got.ID != b.ID {
		t.Errorf("id=%s, want %s", got.ID, b.ID)
	}

	vehicles, err := client.GetAvailableVehicles(ctx, b.ID)
	if err != nil {
		t.Fatalf("getting vehicles: %v", err)
	}
	if len(vehicles) != len(fixture.Deals) {
		t.Errorf("vehicles=%d, want %d", len(vehicles), len(fixture.Deals))
	}

	protections, err := client.GetAvailableProtections(ctx, b.ID)
	if err != nil {
		t.Fatalf("getting protections: %v", err)
	}
	if len(protections) != len(fixture.ProtectionPackages) {
		t.Errorf("protections=%d, want %d", len(protections), len(fixture.ProtectionPackages))
	}

	addons, err := client.GetAvailableAddons(ctx, b.ID)
	if err != nil {
		t.Fatalf("getting addons: %v", err)
	}
	if len(addons) == 0 {
		t.Error("expected addons")
	}
}

func TestSixtClient_UnknownBooking(t *testing.T) {
	srv := newTestServer(t)
	client := datasource.NewSixtClient(srv.URL)

	_, err := client.GetAvailableVehicles(context.Background(), "does-not-exist")
	if !errors.Is(err, datasource.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestAssignAndComplete(t *testing.T) {
	srv := newTestServer(t)
	client := datasource.NewSixtClient(srv.URL)
	ctx := context.Background()

	b, err := client.CreateBooking(ctx)
	if err != nil {
		t.Fatalf("creating booking: %v", err)
	}

	if _, err := client.AssignVehicle(ctx, b.ID, "veh-5"); err != nil {
		t.Fatalf("assigning vehicle: %v", err)
	}
	if _, err := client.AssignVehicle(ctx, b.ID, "veh-unknown"); !errors.Is(err, datasource.ErrNotFound) {
		t.Errorf("unknown vehicle err=%v, want ErrNotFound", err)
	}
	if _, err := client.AssignProtection(ctx, b.ID, "prot-peace"); err != nil {
		t.Fatalf("assigning protection: %v", err)
	}
	if _, err := client.CompleteBooking(ctx, b.ID); err != nil {
		t.Fatalf("completing booking: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/booking/"+b.ID, http.NoBody)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("getting booking: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if want := `"status":"COMPLETED"`; !strings.Contains(string(body), want) {
		t.Errorf("body=%s, want %s", body, want)
	}
	if want := `"bookedCategory":"FFAR"`; !strings.Contains(string(body), want) {
		t.Errorf("body=%s, want %s", body, want)
	}
}
