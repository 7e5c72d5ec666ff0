// Package main implements a mock Sixt booking API server for local development.
// It serves a canned vehicle, protection and addon catalog from a JSON fixture
// and keeps bookings in memory, so the upsell engine can run end to end
// without access to the real API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/rental-upsell/internal/datasource"
)

// catalog is the fixture served for every booking.
type catalog struct {
	Deals              []datasource.Deal           `json:"deals"`
	ProtectionPackages []datasource.ProtectionWire `json:"protectionPackages"`
	Addons             []datasource.AddonCategory  `json:"addons"`
}

// bookingStore keeps bookings in memory.
type bookingStore struct {
	mu       sync.Mutex
	bookings map[string]*datasource.BookingWire
	now      func() time.Time
}

func newBookingStore() *bookingStore {
	return &bookingStore{
		bookings: make(map[string]*datasource.BookingWire),
		now:      time.Now,
	}
}

func (s *bookingStore) create() datasource.BookingWire {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	b := &datasource.BookingWire{
		ID:             uuid.NewString(),
		Status:         "CREATED",
		BookedCategory: "CDAR",
		PickupLocation: "Munich Airport",
		Start:          now.Add(24 * time.Hour).Format(time.RFC3339),
		End:            now.Add(5 * 24 * time.Hour).Format(time.RFC3339),
		CreatedAt:      now.Format(time.RFC3339),
	}
	s.bookings[b.ID] = b
	return *b
}

func (s *bookingStore) get(id string) (datasource.BookingWire, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return datasource.BookingWire{}, false
	}
	return *b, true
}

func (s *bookingStore) update(id string, fn func(*datasource.BookingWire)) (datasource.BookingWire, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return datasource.BookingWire{}, false
	}
	fn(b)
	return *b, true
}

func main() {
	port := flag.Int("port", 8081, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"deals", len(fixture.Deals),
		"protections", len(fixture.ProtectionPackages),
		"addon_categories", len(fixture.Addons),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Sixt server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture, newBookingStore())),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *catalog, store *bookingStore) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/booking", createBookingHandler(logger, store))
	mux.HandleFunc("GET /api/booking/{id}", getBookingHandler(store))
	mux.HandleFunc("GET /api/booking/{id}/vehicles", catalogHandler(store, func(id string) any {
		return datasource.VehiclesResponse{ReservationID: id, Deals: fixture.Deals}
	}))
	mux.HandleFunc("GET /api/booking/{id}/protections", catalogHandler(store, func(string) any {
		return datasource.ProtectionsResponse{ProtectionPackages: fixture.ProtectionPackages}
	}))
	mux.HandleFunc("GET /api/booking/{id}/addons", catalogHandler(store, func(string) any {
		return datasource.AddonsResponse{Addons: fixture.Addons}
	}))
	mux.HandleFunc("POST /api/booking/{id}/vehicles/{vehicleID}", assignVehicleHandler(logger, fixture, store))
	mux.HandleFunc("POST /api/booking/{id}/protections/{packageID}", assignProtectionHandler(logger, fixture, store))
	mux.HandleFunc("POST /api/booking/{id}/complete", completeHandler(logger, store))
	return mux
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &c, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": what + " not found"})
}

func createBookingHandler(logger *slog.Logger, store *bookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		b := store.create()
		writeJSON(w, http.StatusOK, b)
		logger.Info("created booking", "id", b.ID)
	}
}

func getBookingHandler(store *bookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := store.get(r.PathValue("id"))
		if !ok {
			notFound(w, "booking")
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

func catalogHandler(store *bookingStore, body func(id string) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if _, ok := store.get(id); !ok {
			notFound(w, "booking")
			return
		}
		writeJSON(w, http.StatusOK, body(id))
	}
}

func assignVehicleHandler(logger *slog.Logger, fixture *catalog, store *bookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := r.PathValue("vehicleID")
		var acriss string
		for i := range fixture.Deals {
			if fixture.Deals[i].Vehicle.ID == vehicleID {
				acriss = fixture.Deals[i].Vehicle.ACRISSCode
				break
			}
		}
		if acriss == "" {
			notFound(w, "vehicle")
			return
		}

		b, ok := store.update(r.PathValue("id"), func(b *datasource.BookingWire) {
			b.BookedCategory = acriss
			b.Status = "VEHICLE_ASSIGNED"
		})
		if !ok {
			notFound(w, "booking")
			return
		}
		writeJSON(w, http.StatusOK, b)
		logger.Info("assigned vehicle", "booking", b.ID, "vehicle", vehicleID)
	}
}

func assignProtectionHandler(logger *slog.Logger, fixture *catalog, store *bookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID := r.PathValue("packageID")
		found := false
		for i := range fixture.ProtectionPackages {
			if fixture.ProtectionPackages[i].ID == packageID {
				found = true
				break
			}
		}
		if !found {
			notFound(w, "protection package")
			return
		}

		b, ok := store.update(r.PathValue("id"), func(b *datasource.BookingWire) {
			b.Status = "PROTECTION_ASSIGNED"
		})
		if !ok {
			notFound(w, "booking")
			return
		}
		writeJSON(w, http.StatusOK, b)
		logger.Info("assigned protection", "booking", b.ID, "package", packageID)
	}
}

func completeHandler(logger *slog.Logger, store *bookingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := store.update(r.PathValue("id"), func(b *datasource.BookingWire) {
			b.Status = "COMPLETED"
		})
		if !ok {
			notFound(w, "booking")
			return
		}
		writeJSON(w, http.StatusOK, b)
		logger.Info("completed booking", "id", b.ID)
	}
}
