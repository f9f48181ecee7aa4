package coverletters

import "time"

// CoverLetterResponse is the public projection of a saved cover letter.
type CoverLetterResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	JobTitle       string    `json:"jobTitle"`
	JobDescription string    `json:"jobDescription,omitempty"`
	Tone           Tone      `json:"tone"`
	CoverLetter    Letter    `json:"coverLetter"`
	CreatedAt      time.Time `json:"created_at"`
}

func toResponse(rec CoverLetter) CoverLetterResponse {
	return CoverLetterResponse{
		ID:             rec.ID,
		CompanyName:    rec.CompanyName,
		JobTitle:       rec.JobTitle,
		JobDescription: rec.JobDescription,
		Tone:           rec.Tone,
		CoverLetter:    rec.Letter,
		CreatedAt:      rec.CreatedAt,
	}
}
