package gomap

import "strings"

type fieldTag struct {
	name      string
	omitEmpty bool
	skip      bool
}

// parseTag parses a `json` style tag: a name followed by comma separated
// flags. A tag of "-" skips the field; "-," names it "-".
func parseTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}
	name, flags, _ := strings.Cut(tag, ",")
	res := fieldTag{name: name}
	for flags != "" {
		var flag string
		flag, flags, _ = strings.Cut(flags, ",")
		if flag == "omitempty" {
			res.omitEmpty = true
		}
	}
	return res
}
