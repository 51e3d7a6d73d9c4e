package identity

import (
	"iter"

	"golang.org/x/text/language"
)

// Tags parses declared languages into BCP 47 tags, skipping values that do not parse.
func Tags(langs iter.Seq[string]) []language.Tag {
	var tags []language.Tag
	for l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Match picks the supported tag that best fits the declared languages, in
// preference order. It returns language.Und and language.No when nothing fits.
func Match(langs iter.Seq[string], supported ...language.Tag) (language.Tag, language.Confidence) {
	if len(supported) == 0 {
		return language.Und, language.No
	}
	prefs := Tags(langs)
	if len(prefs) == 0 {
		return language.Und, language.No
	}

	_, idx, conf := language.NewMatcher(supported).Match(prefs...)
	if conf == language.No {
		return language.Und, language.No
	}
	return supported[idx], conf
}
