package output

import (
	"encoding/json"
)

// JSONFormatter serializes the assessment as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(assessment *Assessment) ([]byte, error) {
	return json.MarshalIndent(assessment, "", "  ")
}
