package local

import "testing"

func TestExtractSkillsMatchesTokenBoundaries(t *testing.T) {
	text := "Shipped Go services backed by PostgreSQL. Comfortable with C++ and next.js."
	skills := extractSkills(text)

	want := map[string]bool{"go": false, "postgresql": false, "c++": false, "next.js": false}
	for _, s := range skills {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for skill, found := range want {
		if !found {
			t.Fatalf("expected skill %q in %v", skill, skills)
		}
	}
}

func TestExtractSkillsIgnoresSubstringsOfPlainWords(t *testing.T) {
	// "cargo" contains "go" but must not match the language token.
	skills := extractSkills("Managed cargo manifests for shipping routes.")
	for _, s := range skills {
		if s == "go" {
			t.Fatalf("expected no go match in %v", skills)
		}
	}
}

func TestCategoriesCovered(t *testing.T) {
	cases := []struct {
		name   string
		skills []string
		want   int
	}{
		{name: "none", skills: nil, want: 0},
		{name: "one category", skills: []string{"go", "python"}, want: 1},
		{name: "all categories", skills: []string{"go", "gin", "redis", "docker"}, want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := categoriesCovered(tc.skills); got != tc.want {
				t.Fatalf("categoriesCovered = %d, want %d", got, tc.want)
			}
		})
	}
}
