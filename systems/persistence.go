package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedProgress is the run history stored on disk
type SavedProgress struct {
	FurthestStage int     `json:"furthestStage"` // 1-based, 0 when nothing was reached yet
	BestTime      float64 `json:"bestTime"`      // Seconds for a full clear, 0 when never won
	Wins          int     `json:"wins"`
	Runs          int     `json:"runs"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dragonfight",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads the run history from disk. A missing or unreadable
// record yields an empty history.
func LoadProgress() SavedProgress {
	if !gdataInitialized || gdataManager == nil {
		return SavedProgress{}
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return SavedProgress{}
	}
	if data == nil {
		return SavedProgress{}
	}

	progress, err := DecodeProgress(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return SavedProgress{}
	}
	return progress
}

// SaveProgress saves the run history to disk
func SaveProgress(p SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// DecodeProgress parses a stored record, dropping negative values.
func DecodeProgress(data []byte) (SavedProgress, error) {
	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return SavedProgress{}, err
	}
	p.FurthestStage = max(p.FurthestStage, 0)
	p.BestTime = max(p.BestTime, 0)
	p.Wins = max(p.Wins, 0)
	p.Runs = max(p.Runs, 0)
	return p, nil
}

// RecordRun folds one finished run into the history. stageIndex is the
// 0-based stage the run ended on; clearTime only counts for a win.
func RecordRun(prev SavedProgress, stageIndex int, won bool, clearTime float64) SavedProgress {
	next := prev
	next.Runs++
	if reached := stageIndex + 1; reached > next.FurthestStage {
		next.FurthestStage = reached
	}
	if won {
		next.Wins++
		if clearTime > 0 && (next.BestTime == 0 || clearTime < next.BestTime) {
			next.BestTime = clearTime
		}
	}
	return next
}
