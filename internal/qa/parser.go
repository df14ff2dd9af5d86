package qa

import (
	"strings"
)

type parseState int

const (
	stateBeforeAnalysis parseState = iota
	stateInAnalysis
	stateInInsights
)

type section int

const (
	sectionNone section = iota
	sectionAnalysis
	sectionInsights
)

var headings = []struct {
	name    string
	section section
}{
	{name: "Analysis", section: sectionAnalysis},
	{name: "Key Insights", section: sectionInsights},
}

// matchHeading recognizes "## Analysis" and "## Key Insights" lines, case-insensitively.
// Text that follows the heading name on the same line is returned as remainder.
func matchHeading(line string) (section, string) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "##") {
		return sectionNone, ""
	}
	rest := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))

	for _, heading := range headings {
		if len(rest) < len(heading.name) || !strings.EqualFold(rest[:len(heading.name)], heading.name) {
			continue
		}
		remainder := strings.TrimSpace(rest[len(heading.name):])
		remainder = strings.TrimSpace(strings.TrimPrefix(remainder, ":"))
		return heading.section, remainder
	}
	return sectionNone, ""
}

// parseResponseText splits the model's markdown into the analysis body and the insight bullets.
//
// Fallbacks:
//   - without an Analysis heading, the (trimmed) text is the analysis
//   - with only a Key Insights heading, the text before it is the analysis
//   - if neither analysis nor insights remain, the full text is the analysis
func parseResponseText(raw string) (string, []string) {
	text := strings.TrimSpace(raw)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var prelude, analysisLines, insightLines []string
	var hasAnalysis, hasInsights bool
	state := stateBeforeAnalysis

	for _, line := range lines {
		sec, remainder := matchHeading(line)
		// Each heading ends the previous section, so insights placed before the analysis stop at it
		switch sec {
		case sectionAnalysis:
			state = stateInAnalysis
			hasAnalysis = true
			if remainder != "" {
				analysisLines = append(analysisLines, remainder)
			}
			continue
		case sectionInsights:
			state = stateInInsights
			hasInsights = true
			if remainder != "" {
				insightLines = append(insightLines, remainder)
			}
			continue
		}

		switch state {
		case stateBeforeAnalysis:
			prelude = append(prelude, line)
		case stateInAnalysis:
			analysisLines = append(analysisLines, line)
		case stateInInsights:
			insightLines = append(insightLines, line)
		}
	}

	var analysis string
	switch {
	case hasAnalysis:
		analysis = strings.TrimSpace(strings.Join(analysisLines, "\n"))
	case hasInsights:
		analysis = strings.TrimSpace(strings.Join(prelude, "\n"))
	default:
		analysis = text
	}

	summaryPoints := make([]string, 0, len(insightLines))
	for _, line := range insightLines {
		if point := stripBullet(line); point != "" {
			summaryPoints = append(summaryPoints, point)
		}
	}

	if analysis == "" && len(summaryPoints) == 0 {
		analysis = text
	}
	return analysis, summaryPoints
}

func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-") {
		line = line[1:]
	}
	return strings.TrimSpace(line)
}
