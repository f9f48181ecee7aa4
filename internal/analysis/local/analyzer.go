package local

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"careercraft-backend/internal/analysis"
)

// Analyzer implements analysis.Client in-process. It is the degraded stand-in
// used when no external analysis service is configured: extraction runs
// locally and scoring applies the same heuristics the service would.
type Analyzer struct{}

// New constructs a local analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// ExtractText extracts plain text from a PDF or DOCX payload.
func (a *Analyzer) ExtractText(ctx context.Context, data []byte, fileName string, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := extractText(data, fileName, mimeType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", analysis.ErrUnavailable, err)
	}
	return strings.TrimSpace(text), nil
}

// Analyze scores extracted text against resume heuristics: section
// completeness, skill breadth and reuse, keyword coverage, readability.
func (a *Analyzer) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Result{}, err
	}

	sections := detectSections(text)
	raw := rawSections(text)
	skills := extractSkills(text)

	sectionScore := scoreSections(sections, raw)
	skillScore := scoreSkills(skills, raw)
	keywordScore, missing := scoreKeywords(text, skills)
	readability := scoreReadability(text)

	total := math.Min(100, math.Round(sectionScore+skillScore+keywordScore+readability))
	feedback := buildFeedback(sections, skillScore, keywordScore, readability)

	return analysis.Result{
		ATSScore:        &total,
		Skills:          skills,
		Feedback:        feedback,
		Sections:        sections,
		Readability:     &readability,
		KeywordScore:    &keywordScore,
		StructureScore:  &sectionScore,
		MissingKeywords: missing,
		ScoreBreakdown: map[string]float64{
			"sections":    sectionScore,
			"skills":      skillScore,
			"keywords":    keywordScore,
			"readability": readability,
		},
	}, nil
}

var sectionHeaders = map[string]string{
	"skills":       "SKILLS",
	"education":    "EDUCATION",
	"projects":     "PROJECTS",
	"experience":   "EXPERIENCE",
	"achievements": "ACHIEVEMENTS",
}

var requiredSections = []string{"skills", "education", "experience", "projects"}

func detectSections(text string) map[string]bool {
	upper := strings.ToUpper(text)
	out := make(map[string]bool, len(sectionHeaders))
	for key, header := range sectionHeaders {
		out[key] = strings.Contains(upper, header)
	}
	return out
}

// rawSections slices the text into per-section bodies keyed by the section
// name, using header lines as boundaries.
func rawSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	type headerPos struct {
		section string
		line    int
	}
	var positions []headerPos
	for i, line := range lines {
		normalized := strings.ToUpper(strings.TrimSpace(line))
		for key, header := range sectionHeaders {
			if normalized == header {
				positions = append(positions, headerPos{section: key, line: i})
			}
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].line < positions[j].line })

	out := make(map[string]string, len(positions))
	for idx, pos := range positions {
		end := len(lines)
		if idx+1 < len(positions) {
			end = positions[idx+1].line
		}
		out[pos.section] = strings.TrimSpace(strings.Join(lines[pos.line+1:end], "\n"))
	}
	return out
}

func scoreSections(sections map[string]bool, raw map[string]string) float64 {
	score := 0.0
	for _, section := range requiredSections {
		if !sections[section] {
			continue
		}
		if strings.TrimSpace(raw[section]) != "" {
			score += 7.5
		} else {
			score += 3.5
		}
	}
	return score
}

func scoreSkills(skills []string, raw map[string]string) float64 {
	var count float64
	switch n := len(skills); {
	case n < 6:
		count = 5
	case n < 10:
		count = 10
	case n < 15:
		count = 13
	default:
		count = 15
	}

	var diversity float64
	switch covered := categoriesCovered(skills); {
	case covered >= 4:
		diversity = 8
	case covered == 3:
		diversity = 6
	case covered == 2:
		diversity = 4
	default:
		diversity = 2
	}

	// Skills also mentioned in experience or project bullets count double.
	workText := strings.ToLower(raw["experience"] + "\n" + raw["projects"])
	workTokens := tokenSet(workText)
	reused := 0
	for _, s := range skills {
		if matchesSkill(workText, workTokens, s) {
			reused++
		}
	}
	ratio := float64(reused) / math.Max(float64(len(skills)), 1)

	var reuse float64
	switch {
	case ratio > 0.6:
		reuse = 7
	case ratio > 0.4:
		reuse = 5
	case ratio > 0.2:
		reuse = 3
	default:
		reuse = 1
	}

	return count + diversity + reuse
}

const topKeywordCount = 30

// scoreKeywords rewards overlap between the document's dominant terms and the
// detected skills, and reports dominant terms that look like uncovered skills.
func scoreKeywords(text string, skills []string) (float64, []string) {
	keywords := topKeywords(text, topKeywordCount)

	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[normalizeToken(s)] = struct{}{}
	}

	hits := 0
	var missing []string
	for _, k := range keywords {
		if _, ok := skillSet[normalizeToken(k)]; ok {
			hits++
		} else if isCatalogSkill(k) {
			missing = append(missing, k)
		}
	}

	var presence float64
	switch {
	case hits >= 8:
		presence = 10
	case hits >= 5:
		presence = 7
	case hits >= 3:
		presence = 4
	default:
		presence = 2
	}

	density := math.Min(10, float64(len(keywords))/float64(topKeywordCount)*10)
	return presence + density, missing
}

func isCatalogSkill(word string) bool {
	normalized := normalizeToken(word)
	for _, group := range skillCatalog {
		for _, skill := range group {
			if normalizeToken(skill) == normalized {
				return true
			}
		}
	}
	return false
}

// scoreReadability approximates sentence-complexity scoring: resumes read
// best in short bullet-like sentences.
func scoreReadability(text string) float64 {
	sentences := 0
	words := 0
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	}) {
		n := len(strings.Fields(chunk))
		if n == 0 {
			continue
		}
		sentences++
		words += n
	}
	if sentences == 0 {
		return 5
	}

	avg := float64(words) / float64(sentences)
	switch {
	case avg >= 6 && avg <= 20:
		return 20
	case avg < 6:
		return 14
	case avg <= 30:
		return 12
	default:
		return 6
	}
}

func buildFeedback(sections map[string]bool, skillScore, keywordScore, readability float64) []string {
	var feedback []string

	for _, section := range requiredSections {
		if !sections[section] {
			feedback = append(feedback, fmt.Sprintf("Add a dedicated %s section so screening systems can find it.", strings.ToUpper(section)))
		}
	}
	if skillScore < 24 {
		feedback = append(feedback, "List more concrete skills and reuse them in your experience and project bullets.")
	}
	if keywordScore < 12 {
		feedback = append(feedback, "Work more role-relevant keywords into your bullet points.")
	}
	if readability < 12 {
		feedback = append(feedback, "Shorten long sentences; concise bullet points score better with screening systems.")
	}

	for len(feedback) < 3 {
		feedback = append(feedback, "Quantify achievements with numbers where possible.")
	}
	return feedback
}

var stopwords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "have": {}, "was": {}, "were": {}, "are": {}, "has": {},
	"using": {}, "used": {}, "into": {}, "over": {}, "per": {}, "via": {},
}

// topKeywords returns the most frequent non-stopword tokens, alphabetical on
// ties for determinism.
func topKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, word := range tokenizeWords(strings.ToLower(text)) {
		if len(word) < 3 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func tokenizeWords(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '+' && r != '#' && r != '.'
	})
}

func tokenSet(lower string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range tokenizeWords(lower) {
		out[strings.Trim(w, ".")] = struct{}{}
	}
	return out
}

func normalizeToken(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

var _ analysis.Client = (*Analyzer)(nil)
