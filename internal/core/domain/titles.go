package domain

import "strings"

// approvedTitles is the controlled vocabulary. Order is significant: when several
// entries match a raw title by substring, the earliest one wins.
var approvedTitles = []string{
	"Academic Center Director",
	"Academic Counselor",
	"Academic Dean",
	"Academic Support Specialist",
	"Associate Head of Schools",
	"Co-Dean of Students",
	"Counseling Department Chair",
	"Dean of Student Life",
	"Dean of Students",
	"Director",
	"Director of Academic Operations",
	"Director of Academic Programs",
	"Director of Academic Services",
	"Director of Academic Success",
	"Director of Academic Support",
	"Director of Counseling",
	"Director of Curriculum",
	"Director of Leadership",
	"Director of Learning",
	"Director of Student Services",
	"Director of Student Support Services",
	"Director of Teaching and Learning",
	"Director of Wellness",
	"Director of Wellness & Leadership",
	"Division Head, Grades 11-12",
	"Division Head, Grades 9-12",
	"Elementary Principal",
	"Elementary School Dean",
	"Elementary School Director",
	"Elementary School Principal",
	"Executive Principal",
	"Grades 8-12 Director",
	"Head Counselor",
	"Head of Campus",
	"Head of Lower School",
	"Head of Middle School",
	"Head of School",
	"Head of School, Lower",
	"Head of School, Upper",
	"Head of Upper School",
	"Headmaster",
	"High School Dean",
	"High School Director",
	"High School Principal",
	"Lead Counselor",
	"Learning Resources Specialist",
	"Learning Specialist",
	"Learning Support Department Chair",
	"Learning Support Specialist",
	"Lower School Counselor",
	"Lower School Director",
	"Lower School Principal",
	"Middle & Upper School Counselor",
	"Middle School Dean",
	"Middle School Director",
	"Middle School Principal",
	"President",
	"Principal",
	"Sophomore Class Dean",
	"Student Services Coordinator",
	"Student Services Lead",
	"Superintendent",
	"Upper School Counselor",
	"Upper School Director",
	"Upper School Learning Specialist",
	"Upper School Principal",
	"Vice Principal Student Services",
}

// ControlledVocabulary returns a copy of the approved canonical titles in precedence order.
func ControlledVocabulary() []string {
	out := make([]string, len(approvedTitles))
	copy(out, approvedTitles)
	return out
}

// StandardiseTitle maps a raw job title to its canonical vocabulary entry.
//
// Titles are compared lowercased and trimmed. An exact match anywhere in the
// vocabulary is returned first. Otherwise the first entry, in vocabulary order,
// where either string contains the other is returned. Short generic entries such
// as "Director" therefore absorb many longer titles; that is accepted behaviour.
// Blank titles never match.
func StandardiseTitle(raw string) (string, bool) {
	return standardise(raw, approvedTitles)
}

func standardise(raw string, vocabulary []string) (string, bool) {
	title := normaliseTitle(raw)
	if title == "" {
		return "", false
	}

	for _, canonical := range vocabulary {
		if normaliseTitle(canonical) == title {
			return canonical, true
		}
	}

	for _, canonical := range vocabulary {
		c := normaliseTitle(canonical)
		if strings.Contains(title, c) || strings.Contains(c, title) {
			return canonical, true
		}
	}

	return "", false
}

func normaliseTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
