package cave

import "unicode"

// Classify returns the Kind of a label.
//
// "start" and "end" are exact matches. Otherwise a label is Limited iff every
// rune has the Unicode Lowercase property (category Ll plus Other_Lowercase,
// e.g. 'ª', 'ʰ', 'ⅰ'); everything else, including the empty label, labels with
// digits and mixed-case labels, is Unlimited.
//
// Complexity: O(len(label)).
func Classify(label string) Kind {
	switch label {
	case StartLabel:
		return Start
	case EndLabel:
		return End
	case "":
		return Unlimited
	}
	for _, r := range label {
		if !isLower(r) {
			return Unlimited
		}
	}

	return Limited
}

// isLower reports whether r has the Unicode Lowercase property.
// unicode.IsLower alone covers only category Ll.
func isLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}
