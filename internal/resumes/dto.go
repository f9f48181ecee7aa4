package resumes

import (
	"time"

	"careercraft-backend/internal/analysis"
)

// ResumeResponse is the public projection of a resume returned after upload.
// StorageKey and extracted text stay internal.
type ResumeResponse struct {
	ID         string           `json:"id"`
	Filename   string           `json:"filename"`
	ResumeName string           `json:"resume_name"`
	URL        string           `json:"url"`
	UploadedAt time.Time        `json:"uploadedAt"`
	CreatedAt  time.Time        `json:"created_at"`
	ATSScore   *float64         `json:"ats_score"`
	Analysis   *analysis.Result `json:"analysis"`
}

// ResumeListItem extends the projection with size and media type for listings.
type ResumeListItem struct {
	ID         string           `json:"id"`
	ResumeName string           `json:"resume_name"`
	Filename   string           `json:"filename"`
	URL        string           `json:"url"`
	UploadedAt time.Time        `json:"uploadedAt"`
	CreatedAt  time.Time        `json:"created_at"`
	SizeBytes  int64            `json:"size"`
	MimeType   string           `json:"mimetype"`
	ATSScore   *float64         `json:"ats_score"`
	Analysis   *analysis.Result `json:"analysis"`
}

func toResponse(rec Resume) ResumeResponse {
	return ResumeResponse{
		ID:         rec.ID,
		Filename:   rec.Filename,
		ResumeName: displayName(rec),
		URL:        rec.URL,
		UploadedAt: rec.UploadedAt,
		CreatedAt:  rec.CreatedAt,
		ATSScore:   atsScore(rec.Analysis),
		Analysis:   rec.Analysis,
	}
}

func toListItem(rec Resume) ResumeListItem {
	return ResumeListItem{
		ID:         rec.ID,
		ResumeName: displayName(rec),
		Filename:   rec.Filename,
		URL:        rec.URL,
		UploadedAt: rec.UploadedAt,
		CreatedAt:  rec.CreatedAt,
		SizeBytes:  rec.SizeBytes,
		MimeType:   rec.MimeType,
		ATSScore:   atsScore(rec.Analysis),
		Analysis:   rec.Analysis,
	}
}

func atsScore(r *analysis.Result) *float64 {
	if r == nil {
		return nil
	}
	return r.ATSScore
}

func displayName(rec Resume) string {
	if rec.ResumeName != "" {
		return rec.ResumeName
	}
	return rec.Filename
}
