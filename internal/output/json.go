package output

import (
	"github.com/manav03panchal/pocketlog/internal/records"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ListResponse wraps a record listing.
type ListResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Items any    `json:"items"`
}

// RecordResponse reports a single created or changed record.
type RecordResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Record any    `json:"record"`
}

// DeleteResponse reports removed records.
type DeleteResponse struct {
	Status string   `json:"status"`
	Kind   string   `json:"kind"`
	IDs    []string `json:"ids"`
	Count  int      `json:"count"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// StatsResponse bundles every app's statistics. Sections not requested are
// omitted.
type StatsResponse struct {
	Tasks     *records.TaskStats     `json:"tasks,omitempty"`
	Manicures *records.ManicureStats `json:"manicures,omitempty"`
	Wardrobe  *records.WardrobeStats `json:"wardrobe,omitempty"`
	Words     *records.WordStats     `json:"words,omitempty"`
	Ideas     *records.IdeaStats     `json:"ideas,omitempty"`
}

// InfoResponse describes the storage the CLI is using.
type InfoResponse struct {
	Version    string            `json:"version"`
	Backend    string            `json:"backend"`
	Path       string            `json:"path,omitempty"`
	ConfigPath string            `json:"config_path"`
	Keys       []storage.KeyStat `json:"keys"`
	Counts     map[string]int    `json:"counts"`
}

// PrintList outputs a record listing. A nil slice is rendered as [].
func (j *JSONFormatter) PrintList(kind string, items any, count int) error {
	if count == 0 {
		items = []struct{}{}
	}
	return j.JSON(ListResponse{Kind: kind, Count: count, Items: items})
}

// PrintRecord outputs a created or changed record.
func (j *JSONFormatter) PrintRecord(status, kind string, record any) error {
	return j.JSON(RecordResponse{Status: status, Kind: kind, Record: record})
}

// PrintDeleted outputs removed record ids.
func (j *JSONFormatter) PrintDeleted(kind string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return j.JSON(DeleteResponse{Status: "deleted", Kind: kind, IDs: ids, Count: len(ids)})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}
