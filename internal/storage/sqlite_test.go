package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreAddAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	n, err := store.AddWords([]string{"Planet", " garden ", "", "rocket"})
	if err != nil {
		t.Fatalf("AddWords() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 inserted words, got %d", n)
	}

	words, err := store.Words()
	if err != nil {
		t.Fatalf("Words() failed: %v", err)
	}
	want := []string{"planet", "garden", "rocket"}
	if len(words) != len(want) {
		t.Fatalf("Expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Word %d: expected %q, got %q", i, want[i], words[i])
		}
	}
}

func TestStoreSkipsDuplicates(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddWords([]string{"tree", "house"}); err != nil {
		t.Fatalf("AddWords() failed: %v", err)
	}
	n, err := store.AddWords([]string{"TREE", "library"})
	if err != nil {
		t.Fatalf("AddWords() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 new word, got %d", n)
	}

	words, _ := store.Words()
	if len(words) != 3 {
		t.Errorf("Expected 3 words, got %v", words)
	}
}

func TestStoreCountByLength(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddWords([]string{"cat", "dog", "tree", "elephant"}); err != nil {
		t.Fatalf("AddWords() failed: %v", err)
	}

	counts, err := store.CountByLength()
	if err != nil {
		t.Fatalf("CountByLength() failed: %v", err)
	}
	if counts[3] != 2 || counts[4] != 1 || counts[8] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestStoreEntriesOrder(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddWords([]string{"cat", "elephant", "tree"}); err != nil {
		t.Fatalf("AddWords() failed: %v", err)
	}

	entries, err := store.Entries(2)
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries with limit, got %d", len(entries))
	}
	if entries[0].Word != "elephant" || entries[0].Length != 8 {
		t.Errorf("Expected longest word first, got %+v", entries[0])
	}
}

func TestStoreClearWords(t *testing.T) {
	store := openTestStore(t)

	store.AddWords([]string{"one", "two"})
	if err := store.ClearWords(); err != nil {
		t.Fatalf("ClearWords() failed: %v", err)
	}

	words, err := store.Words()
	if err != nil {
		t.Fatalf("Words() failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected no words after clear, got %v", words)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.AddWords([]string{"persist"})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed on reopen: %v", err)
	}
	defer store2.Close()

	words, _ := store2.Words()
	if len(words) != 1 || words[0] != "persist" {
		t.Errorf("Expected persisted word, got %v", words)
	}
}
