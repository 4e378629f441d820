package llm

import "strings"

// StripFences removes a markdown code-fence wrapper (```json ... ```) and any
// leading/trailing noise outside the outermost JSON object. Models wrap JSON
// in fences despite instructions, so callers run this before parsing.
func StripFences(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		rest = strings.TrimPrefix(rest, "json")
		rest = strings.TrimPrefix(rest, "JSON")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = rest[:j]
		} else {
			s = rest
		}
		s = strings.TrimSpace(s)
	}

	// trim prose around the outermost object
	if start := strings.IndexAny(s, "{["); start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndexAny(s, "}]"); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}

	return strings.TrimSpace(s)
}
