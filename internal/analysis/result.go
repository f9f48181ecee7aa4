package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Result is the structured outcome of scoring an extracted resume text.
// Every field is optional; pointer fields distinguish "absent" from a genuine
// zero value so a score of 0 never collides with "unscored".
type Result struct {
	ATSScore        *float64           `json:"ats_score,omitempty"`
	Skills          []string           `json:"skills,omitempty"`
	Feedback        []string           `json:"feedback,omitempty"`
	Sections        map[string]bool    `json:"sections,omitempty"`
	Readability     *float64           `json:"readability,omitempty"`
	KeywordScore    *float64           `json:"keyword_score,omitempty"`
	StructureScore  *float64           `json:"structure_score,omitempty"`
	MissingKeywords []string           `json:"missing_keywords,omitempty"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown,omitempty"`
	JobMatch        map[string]Scalar  `json:"job_match,omitempty"`
}

// Score returns the ATS score and whether one is present.
func (r *Result) Score() (float64, bool) {
	if r == nil || r.ATSScore == nil {
		return 0, false
	}
	return *r.ATSScore, true
}

// Scalar is a string-or-number JSON value used for free-form sub-objects the
// scoring service returns.
type Scalar struct {
	Str   string
	Num   float64
	IsNum bool
}

// StringValue builds a string Scalar.
func StringValue(s string) Scalar {
	return Scalar{Str: s}
}

// NumberValue builds a numeric Scalar.
func NumberValue(n float64) Scalar {
	return Scalar{Num: n, IsNum: true}
}

// MarshalJSON encodes the scalar as a bare number or string.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.IsNum {
		return []byte(strconv.FormatFloat(s.Num, 'f', -1, 64)), nil
	}
	return json.Marshal(s.Str)
}

// UnmarshalJSON accepts a JSON number or string; anything else is rejected.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = NumberValue(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StringValue(str)
		return nil
	}
	return fmt.Errorf("scalar must be a string or number, got %s", string(data))
}
