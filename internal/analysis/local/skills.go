package local

import "strings"

// skillCatalog groups known skill tokens by category. Diversity scoring counts
// how many categories a resume touches.
var skillCatalog = map[string][]string{
	"languages": {
		"c", "c++", "c#", "go", "golang", "java", "javascript", "typescript",
		"python", "ruby", "rust", "kotlin", "swift", "php", "sql", "scala",
	},
	"frameworks": {
		"react", "next.js", "angular", "vue", "express", "fastapi", "django",
		"flask", "spring", "rails", "flutter", "gin", "node.js",
	},
	"databases": {
		"postgresql", "postgres", "mysql", "mongodb", "redis", "sqlite",
		"dynamodb", "elasticsearch", "firebase", "cassandra",
	},
	"tools": {
		"git", "github", "gitlab", "docker", "kubernetes", "aws", "gcp",
		"azure", "terraform", "jenkins", "linux", "postman", "kafka", "grpc",
	},
}

// extractSkills matches catalog entries against the text. Plain-word skills
// are matched on token boundaries; skills with punctuation ("c++", "next.js")
// fall back to a substring match.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	tokens := tokenSet(lower)

	var found []string
	seen := make(map[string]struct{})
	for _, group := range skillCatalog {
		for _, skill := range group {
			if _, dup := seen[skill]; dup {
				continue
			}
			if !matchesSkill(lower, tokens, skill) {
				continue
			}
			seen[skill] = struct{}{}
			found = append(found, skill)
		}
	}
	return found
}

func matchesSkill(lowerText string, tokens map[string]struct{}, skill string) bool {
	if isPlainWord(skill) {
		_, ok := tokens[skill]
		return ok
	}
	return strings.Contains(lowerText, skill)
}

func isPlainWord(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func categoriesCovered(skills []string) int {
	present := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		present[s] = struct{}{}
	}

	covered := 0
	for _, group := range skillCatalog {
		for _, skill := range group {
			if _, ok := present[skill]; ok {
				covered++
				break
			}
		}
	}
	return covered
}
