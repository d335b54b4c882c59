package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRows() []dgidb.Interaction {
	return []dgidb.Interaction{
		{
			GeneName:     "BRAF",
			GeneLongName: "B-Raf proto-oncogene",
			DrugName:     "VEMURAFENIB",
			DrugApproved: true,
			Score:        12.92,
			Attributes:   map[string][]string{"Interaction Type": {"inhibitor"}},
			Sources:      []string{"MyCancerGenome"},
			PMIDs:        []int{21639808},
		},
		{
			GeneName: "BRAF",
			DrugName: "DABRAFENIB",
			Score:    9.51,
		},
	}
}

func TestSaveAndGetInteractions(t *testing.T) {
	db := newTestDB(t)

	snap, err := db.SaveInteractions(dgidb.SearchGenes, []string{"BRAF"}, sampleRows())
	if err != nil {
		t.Fatalf("SaveInteractions() error = %v", err)
	}
	if snap.ID == "" {
		t.Fatal("snapshot ID is empty")
	}
	if snap.Mode != "genes" {
		t.Errorf("mode = %q, want genes", snap.Mode)
	}

	got, err := db.GetInteractions(snap.ID)
	if err != nil {
		t.Fatalf("GetInteractions() error = %v", err)
	}

	want := sampleRows()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("interactions mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSnapshot(t *testing.T) {
	db := newTestDB(t)

	snap, err := db.SaveInteractions(dgidb.SearchDrugs, []string{"imatinib", "sunitinib"}, nil)
	if err != nil {
		t.Fatalf("SaveInteractions() error = %v", err)
	}

	got, err := db.GetSnapshot(snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if got == nil {
		t.Fatal("snapshot not found")
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSnapshotMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetSnapshot("no-such-id")
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for missing snapshot", got)
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	db := newTestDB(t)

	// Same-second timestamps are possible, so just check both appear.
	first, err := db.SaveInteractions(dgidb.SearchGenes, []string{"BRAF"}, nil)
	if err != nil {
		t.Fatalf("SaveInteractions() error = %v", err)
	}
	second, err := db.SaveInteractions(dgidb.SearchDrugs, []string{"imatinib"}, nil)
	if err != nil {
		t.Fatalf("SaveInteractions() error = %v", err)
	}

	snaps, err := db.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}

	ids := map[string]bool{snaps[0].ID: true, snaps[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Errorf("listed IDs %v missing saved snapshots", ids)
	}
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)

	snap, err := db.SaveInteractions(dgidb.SearchGenes, []string{"BRAF"}, sampleRows())
	if err != nil {
		t.Fatalf("SaveInteractions() error = %v", err)
	}

	deleted, err := db.Delete(snap.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Fatal("Delete() = false, want true")
	}

	got, err := db.GetSnapshot(snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if got != nil {
		t.Error("snapshot still present after delete")
	}

	rows, err := db.GetInteractions(snap.ID)
	if err != nil {
		t.Fatalf("GetInteractions() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d interaction rows after delete, want 0", len(rows))
	}
}

func TestDeleteMissing(t *testing.T) {
	db := newTestDB(t)

	deleted, err := db.Delete("no-such-id")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted {
		t.Error("Delete() = true for missing snapshot")
	}
}
