package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries := []ResultEntry{
		{AlgorithmID: "bubble", SequenceLen: 6, TotalMoves: 10, CorrectMoves: 8, IncorrectMoves: 2, Efficiency: 80, DurationSecs: 45},
		{AlgorithmID: "bubble", SequenceLen: 5, TotalMoves: 7, CorrectMoves: 7, IncorrectMoves: 0, Efficiency: 100, DurationSecs: 30},
		{AlgorithmID: "bubble", SequenceLen: 7, TotalMoves: 12, CorrectMoves: 6, IncorrectMoves: 6, Efficiency: 50, DurationSecs: 90},
		{AlgorithmID: "selection", SequenceLen: 5, TotalMoves: 4, CorrectMoves: 3, IncorrectMoves: 1, Efficiency: 75, DurationSecs: 20},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults("bubble", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 bubble results, got %d", len(results))
	}

	// Newest first: insert order is preserved by id tiebreak.
	if results[0].Efficiency != 50 {
		t.Errorf("Expected newest result first (efficiency 50), got %d", results[0].Efficiency)
	}
	if results[0].TotalMoves != results[0].CorrectMoves+results[0].IncorrectMoves {
		t.Errorf("Inconsistent move counts in %+v", results[0])
	}

	selResults, err := store.RecentResults("selection", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(selResults) != 1 {
		t.Errorf("Expected 1 selection result, got %d", len(selResults))
	}
}

func TestBestEfficiency(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	best, err := store.BestEfficiency("bubble")
	if err != nil {
		t.Fatalf("BestEfficiency() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveResult(ResultEntry{AlgorithmID: "bubble", SequenceLen: 5, TotalMoves: 10, CorrectMoves: 6, IncorrectMoves: 4, Efficiency: 60, DurationSecs: 40})
	store.SaveResult(ResultEntry{AlgorithmID: "bubble", SequenceLen: 5, TotalMoves: 8, CorrectMoves: 7, IncorrectMoves: 1, Efficiency: 88, DurationSecs: 35})

	best, err = store.BestEfficiency("bubble")
	if err != nil {
		t.Fatalf("BestEfficiency() failed: %v", err)
	}
	if best != 88 {
		t.Errorf("Expected best efficiency 88, got %d", best)
	}
}

func TestRecentResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 15; i++ {
		store.SaveResult(ResultEntry{AlgorithmID: "insertion", SequenceLen: 5, TotalMoves: i + 1, CorrectMoves: i + 1, Efficiency: 100, DurationSecs: i})
	}

	results, err := store.RecentResults("insertion", 5)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("Expected 5 results with limit 5, got %d", len(results))
	}

	// Limit <= 0 falls back to the default of 10.
	results, err = store.RecentResults("insertion", 0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("Expected 10 results with default limit, got %d", len(results))
	}
}

func TestGetAlgorithmStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(ResultEntry{AlgorithmID: "selection", SequenceLen: 5, TotalMoves: 4, CorrectMoves: 4, Efficiency: 100, DurationSecs: 25})
	store.SaveResult(ResultEntry{AlgorithmID: "selection", SequenceLen: 6, TotalMoves: 10, CorrectMoves: 5, IncorrectMoves: 5, Efficiency: 50, DurationSecs: 60})

	stats, err := store.GetAlgorithmStats("selection")
	if err != nil {
		t.Fatalf("GetAlgorithmStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.BestEfficiency != 100 {
		t.Errorf("BestEfficiency = %d, want 100", stats.BestEfficiency)
	}
	if stats.AvgEfficiency != 75 {
		t.Errorf("AvgEfficiency = %f, want 75", stats.AvgEfficiency)
	}
	if stats.BestDuration != 25 {
		t.Errorf("BestDuration = %d, want 25", stats.BestDuration)
	}
}

func TestGetAllAlgorithmStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(ResultEntry{AlgorithmID: "bubble", SequenceLen: 5, TotalMoves: 5, CorrectMoves: 5, Efficiency: 100, DurationSecs: 20})
	store.SaveResult(ResultEntry{AlgorithmID: "insertion", SequenceLen: 5, TotalMoves: 6, CorrectMoves: 3, IncorrectMoves: 3, Efficiency: 50, DurationSecs: 50})

	all, err := store.GetAllAlgorithmStats()
	if err != nil {
		t.Fatalf("GetAllAlgorithmStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 algorithms, got %d", len(all))
	}
	if all["bubble"].BestEfficiency != 100 {
		t.Errorf("bubble BestEfficiency = %d, want 100", all["bubble"].BestEfficiency)
	}
	if all["insertion"].GamesCount != 1 {
		t.Errorf("insertion GamesCount = %d, want 1", all["insertion"].GamesCount)
	}
}

func TestClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(ResultEntry{AlgorithmID: "bubble", SequenceLen: 5, TotalMoves: 5, CorrectMoves: 5, Efficiency: 100, DurationSecs: 20})
	store.SaveResult(ResultEntry{AlgorithmID: "selection", SequenceLen: 5, TotalMoves: 4, CorrectMoves: 4, Efficiency: 100, DurationSecs: 18})

	if err := store.ClearResults("bubble"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.RecentResults("bubble", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 bubble results after clear, got %d", len(results))
	}

	// Other algorithms untouched
	selResults, _ := store.RecentResults("selection", 10)
	if len(selResults) != 1 {
		t.Errorf("Expected selection results to survive, got %d", len(selResults))
	}
}
