package java

import (
	"os"
	"strings"
)

// Properties holds system properties as printed by -XshowSettings:properties.
// Multi-valued properties such as java.library.path are joined with the
// platform list separator.
type Properties map[string]string

// ParseProperties parses the property listing of java -XshowSettings:properties.
// Lines indented deeper than the preceding key line continue its value.
func ParseProperties(output string) Properties {
	props := make(Properties)
	lastKey := ""
	keyIndent := 0
	for _, line := range lines(output) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lastKey = ""
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if lastKey != "" && indent > keyIndent {
			props[lastKey] += string(os.PathListSeparator) + trimmed
			continue
		}
		i := strings.Index(trimmed, "=")
		if indent == 0 || i <= 0 {
			lastKey = ""
			continue
		}
		lastKey = strings.TrimSpace(trimmed[:i])
		keyIndent = indent
		props[lastKey] = strings.TrimSpace(trimmed[i+1:])
	}
	return props
}

// Home returns the java.home property, if present.
func (p Properties) Home() (*Home, bool) {
	path, ok := p["java.home"]
	if !ok || path == "" {
		return nil, false
	}
	return &Home{Path: path}, true
}
