package coverletters

import "time"

// Tone is the requested voice of a cover letter.
type Tone string

const (
	ToneFormal    Tone = "formal"
	ToneConfident Tone = "confident"
	ToneFriendly  Tone = "friendly"
)

// NormalizeTone maps an input string onto a known tone; empty input defaults
// to formal. The second return reports whether the input was recognized.
func NormalizeTone(raw string) (Tone, bool) {
	switch Tone(raw) {
	case "":
		return ToneFormal, true
	case ToneFormal, ToneConfident, ToneFriendly:
		return Tone(raw), true
	default:
		return ToneFormal, false
	}
}

// Letter is the structured body of a cover letter.
type Letter struct {
	Greeting      string   `json:"greeting"`
	Body          []string `json:"body"`
	Closing       string   `json:"closing"`
	SignOff       string   `json:"signOff"`
	CandidateName string   `json:"candidateName,omitempty"`
}

// CoverLetter is a saved cover letter owned by a user. Records are created
// and deleted, never updated.
type CoverLetter struct {
	ID             string
	UserID         string
	CompanyName    string
	JobTitle       string
	JobDescription string
	Tone           Tone
	Letter         Letter
	CreatedAt      time.Time
}
