package services

import "strings"

// ProfileBasePath prefixes every professional profile link.
const ProfileBasePath = "/professionals"

// CategoryGeneral is the generic category; quiz evaluation only lists
// possible conditions when diagnosing under it.
const CategoryGeneral = "General Mental Health"

// Categories is the closed set of condition labels used for routing.
var Categories = []string{
	"General Mental Health",
	"Anxiety & Depression",
	"OCD",
	"ADHD",
	"Bipolar Disorder",
	"PTSD",
}

// roster maps each category to its two professionals. This table is the
// closed vocabulary for both prompt text and link generation.
var roster = map[string][]string{
	"General Mental Health": {"Dr. Priya Sharma", "Dr. Amit Verma"},
	"Anxiety & Depression":  {"Dr. Neha Singh", "Dr. Rahul Kapoor"},
	"OCD":                   {"Dr. Anjali Rao", "Dr. Karan Mehta"},
	"ADHD":                  {"Dr. Sameer Joshi", "Dr. Pooja Iyer"},
	"Bipolar Disorder":      {"Dr. Alok Bhatt", "Dr. Nisha Malhotra"},
	"PTSD":                  {"Dr. Rekha Menon", "Dr. Tarun Chawla"},
}

// ProfessionalsFor returns the two professionals for a category.
func ProfessionalsFor(category string) ([]string, bool) {
	names, ok := roster[category]
	return names, ok
}

// SlugForName lowercases a professional name and replaces spaces with
// hyphens. Punctuation is preserved: "Dr. Priya Sharma" -> "dr.-priya-sharma".
func SlugForName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// ProfileLink builds the profile URL path for a professional name.
func ProfileLink(name string) string {
	return ProfileBasePath + "/" + SlugForName(name)
}

// rosterTable renders the full category -> professionals table, one line
// per category, for embedding in prompts.
func rosterTable() string {
	var b strings.Builder
	for _, cat := range Categories {
		b.WriteString(cat)
		b.WriteString(": ")
		b.WriteString(strings.Join(roster[cat], ", "))
		b.WriteString("\n")
	}
	return b.String()
}
