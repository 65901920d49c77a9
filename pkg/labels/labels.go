// Package labels resolves human-readable display names for the two sides of
// a comparison from an externally maintained label store.
package labels

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Defaults used when no store entry applies.
const (
	DefaultQuery  = "Assembly"
	DefaultTarget = "Reference"
)

// StoreName is the conventional file name of the label store maintained by
// the upload collaborator.
const StoreName = ".file_metadata.json"

// Entry is one label-store record. Stores may carry additional fields;
// only the label matters here.
type Entry struct {
	Label string `json:"label"`
}

// Store maps original upload identifiers to their entries.
type Store map[string]Entry

// CandidateStores builds the ordered list of label-store locations to try.
// Explicit paths come first, then the conventional locations: beside the
// query length source when it lives under an uploads directory, the local
// uploads directory, and the uploads directory next to the output.
func CandidateStores(queryLengthSource, outputPath string, explicit []string) []string {
	var candidates []string
	candidates = append(candidates, explicit...)
	if dir := filepath.Dir(queryLengthSource); strings.Contains(dir, "uploads") {
		candidates = append(candidates, filepath.Join(dir, StoreName))
	}
	candidates = append(candidates, filepath.Join("uploads", StoreName))
	if outputPath != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(outputPath), "..", "uploads", StoreName))
	}
	return candidates
}

// Resolve returns the display labels for the query and target sides. The
// first candidate store that exists and parses wins; within it, an entry's
// label is used, with the identifier itself standing in when the entry has
// no label. Every failure mode degrades to the defaults.
func Resolve(candidates []string, queryID, targetID string, logger *log.Logger) (string, string) {
	if logger == nil {
		logger = log.Default()
	}
	queryLabel, targetLabel := DefaultQuery, DefaultTarget
	if queryID == "" && targetID == "" {
		return queryLabel, targetLabel
	}

	store, path := loadFirst(candidates, logger)
	if store == nil {
		return queryLabel, targetLabel
	}
	logger.Debug("label store found", "path", path)

	if queryID != "" {
		if e, ok := store[queryID]; ok {
			queryLabel = labelOr(e, queryID)
		}
	}
	if targetID != "" {
		if e, ok := store[targetID]; ok {
			targetLabel = labelOr(e, targetID)
		}
	}
	return queryLabel, targetLabel
}

func loadFirst(candidates []string, logger *log.Logger) (Store, string) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var store Store
		if err := json.Unmarshal(data, &store); err != nil {
			logger.Debug("label store unparseable", "path", path, "err", err)
			continue
		}
		return store, path
	}
	return nil, ""
}

func labelOr(e Entry, fallback string) string {
	if e.Label != "" {
		return e.Label
	}
	return fallback
}
