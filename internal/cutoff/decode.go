package cutoff

import (
	"encoding/json"
	"fmt"
)

// wireRecord mirrors the upstream dataset shape. Field keys are fixed,
// case-sensitive, and include internal spaces; all fields are optional at
// the wire level and default when absent or null.
type wireRecord struct {
	Rank          *float64 `json:"Rank"`
	Percentile    *float64 `json:"Percentile"`
	ChoiceCode    *string  `json:"Choice Code"`
	InstituteName *string  `json:"Institute Name"`
	CourseName    *string  `json:"Course Name"`
	Category      *string  `json:"Type"`
}

// DecodeRecords parses a JSON array of upstream cutoff objects into Records.
// A payload that is not a JSON array is an error; individual records with
// missing fields are tolerated, with numbers defaulting to zero and strings
// to empty. Validation happens here, at the load boundary, so the pipeline
// never has to re-check field presence.
func DecodeRecords(data []byte) ([]Record, error) {
	var wire []wireRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode cutoff dataset: %w", err)
	}

	records := make([]Record, len(wire))
	for i, w := range wire {
		records[i] = Record{
			Rank:          int(floatOrZero(w.Rank)),
			Percentile:    floatOrZero(w.Percentile),
			ChoiceCode:    stringOrEmpty(w.ChoiceCode),
			InstituteName: stringOrEmpty(w.InstituteName),
			CourseName:    stringOrEmpty(w.CourseName),
			Category:      stringOrEmpty(w.Category),
		}
	}
	return records, nil
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
