package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"railticket/internal/domain"
)

func TestOpenSeedsMissingCatalog(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open on empty dir returned error: %v", err)
	}
	for _, name := range []string{"trains.csv", "stations.csv", "schedules.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not created by seed: %v", name, err)
		}
	}
	if len(c.Trains()) != 7 {
		t.Fatalf("seeded catalog has %d trains, want 7", len(c.Trains()))
	}

	// Reopening must load the seeded files, not reseed.
	c2, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	if len(c2.Trains()) != len(c.Trains()) {
		t.Fatalf("reopen changed train count")
	}
}

func TestCapacityOf(t *testing.T) {
	c := mustOpen(t)

	seats, err := c.CapacityOf("12001")
	if err != nil {
		t.Fatalf("CapacityOf known train: %v", err)
	}
	if seats != 72 {
		t.Fatalf("CapacityOf(12001) = %d, want 72", seats)
	}

	if _, err := c.CapacityOf("99999"); !domain.IsNotFound(err) {
		t.Fatalf("CapacityOf unknown train = %v, want NotFoundError", err)
	}
}

func TestFindRouteSubstring(t *testing.T) {
	c := mustOpen(t)

	// Case-insensitive substring against station name and city.
	got := c.FindRoute("kolk", "del")
	if len(got) != 1 || got[0].ID != "12001" {
		t.Fatalf("FindRoute(kolk, del) = %v", got)
	}

	// Empty filters match everything.
	if len(c.FindRoute("", "")) != 7 {
		t.Fatalf("empty FindRoute should return all trains")
	}

	// One-sided filter.
	toDelhi := c.FindRoute("", "Delhi")
	if len(toDelhi) != 2 {
		t.Fatalf("FindRoute(-, Delhi) = %d trains, want 2", len(toDelhi))
	}

	if len(c.FindRoute("nowhere", "")) != 0 {
		t.Fatalf("unmatched filter should return no trains")
	}
}

func TestOpenRejectsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	if err := Seed(dir); err != nil {
		t.Fatalf("seed: %v", err)
	}
	bad := "train_id,train_name\n12001,Kolkata Express\n"
	if err := os.WriteFile(filepath.Join(dir, "trains.csv"), []byte(bad), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Open(dir)
	if !domain.IsDataLoad(err) {
		t.Fatalf("Open with malformed trains.csv = %v, want DataLoadError", err)
	}
}

func TestMalformedTrainRowSkipped(t *testing.T) {
	dir := t.TempDir()
	if err := Seed(dir); err != nil {
		t.Fatalf("seed: %v", err)
	}
	content := "train_id,train_name,source_id,destination_id,total_seats\n" +
		"12001,Kolkata Express,ST01,ST02,72\n" +
		"12002,Broken Train,ST01,ST02,not-a-number\n"
	if err := os.WriteFile(filepath.Join(dir, "trains.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(c.Trains()) != 1 {
		t.Fatalf("malformed row should be skipped, got %d trains", len(c.Trains()))
	}
}

func TestSchedulesFor(t *testing.T) {
	c := mustOpen(t)
	scheds := c.SchedulesFor("12001")
	if len(scheds) != 1 {
		t.Fatalf("SchedulesFor(12001) = %d rows, want 1", len(scheds))
	}
	if scheds[0].TravelDate != "2026-09-01" {
		t.Fatalf("unexpected travel date %s", scheds[0].TravelDate)
	}
	if len(c.SchedulesFor("99999")) != 0 {
		t.Fatalf("unknown train should have no schedules")
	}
}

func mustOpen(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return c
}
