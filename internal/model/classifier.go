package model

import "sort"

// Classifier is a dietary or allergen tag attached to a meal. The upstream
// publishes them as short codes; the declaration order below doubles as the
// presentation order used when a meal carries several tags.
type Classifier int

const (
	Pork Classifier = iota
	OrganicPork
	Beef
	OrganicBeef
	Gelatine
	Fish
	AnimalRennet
	Vegetarian
	Vegan
	MensaVital

	// ClassifierUnknown covers wire codes we do not recognize. It sorts
	// after every known classifier and never renders an emoji.
	ClassifierUnknown
)

var classifierCodes = map[string]Classifier{
	"S":   Pork,
	"SAT": OrganicPork,
	"R":   Beef,
	"RAT": OrganicBeef,
	"GEL": Gelatine,
	"MSC": Fish,
	"LAB": AnimalRennet,
	"VEG": Vegetarian,
	"VG":  Vegan,
	"MV":  MensaVital,
}

// ClassifierFromCode maps an upstream wire code to a Classifier.
// Unrecognized codes map to ClassifierUnknown.
func ClassifierFromCode(code string) Classifier {
	if c, ok := classifierCodes[code]; ok {
		return c
	}
	return ClassifierUnknown
}

var classifierEmoji = map[Classifier]string{
	Pork:        "🐖",
	OrganicPork: "🐖",
	Beef:        "🐄",
	OrganicBeef: "🐄",
	Gelatine:    "🐈",
	Fish:        "🐟",
	Vegetarian:  "🥕",
	Vegan:       "🌱",
	MensaVital:  "🥦",
}

// Emoji returns the emoji for a single classifier, or "" when none is mapped.
func (c Classifier) Emoji() string {
	return classifierEmoji[c]
}

// LeadingEmoji picks the emoji shown in front of a meal: classifiers are
// sorted by presentation order and only the first one's emoji is used.
func LeadingEmoji(classifiers []Classifier) string {
	if len(classifiers) == 0 {
		return ""
	}
	sorted := make([]Classifier, len(classifiers))
	copy(sorted, classifiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[0].Emoji()
}
