package brief

import (
	"fmt"
	"strings"

	"github.com/felixbrock/designkit/internal/domain"
)

const (
	defaultAppName   = "your app"
	platform         = "iOS (SwiftUI)"
	standardFeatures = "Standard iOS patterns and interactions"
)

const promptTemplate = `# Build %[1]s - iOS App

## App Concept
%[2]s

**Target Users:** %[3]s
**Primary Action:** %[4]s

## Design Direction

**Emotional Tone:**
This app should feel %[5]s.

**Visual Style:**
%[6]s

**Color Palette:**
Use %[7]s. Primary colors:
%[8]s

**Personality:**
%[9]s

## Technical Requirements

**Platform:** %[10]s

**Special Features:**
%[11]s

## Implementation Plan

1. **Project Setup:**
   - Create a new iOS project using Xcode
   - Set up SwiftUI with the color scheme defined above
   - Configure basic navigation structure

2. **Core Features:**
   - Build the main %[12]s functionality
   - Implement user onboarding flow
%[13]s
3. **UI Components:**
   - Design reusable components matching the %[14]s aesthetic
   - Implement the color palette consistently across all screens
%[15]s
4. **Polish:**
   - Add micro-interactions and feedback
   - Ensure accessibility (VoiceOver, Dynamic Type)
   - Test on different iOS devices and screen sizes

## Getting Started

Create a new iOS project in Xcode:
1. Open Xcode
2. Create New Project → iOS → App
3. Use SwiftUI for the interface
4. Name it "%[1]s"

Then start building! Focus on the core %[12]s functionality first, then layer in the design aesthetics.

---

**Design Keywords:** %[5]s, %[14]s-inspired, %[7]s
**User Experience Goal:** Make it effortless for %[16]s to %[12]s
`

// planStep is an implementation plan line. It always takes one indented line
// of the plan; the bullet text is only written when its flag is set.
type planStep struct {
	enabled func(domain.Submission) bool
	line    string
}

var coreSteps = []planStep{
	{func(s domain.Submission) bool { return s.DarkMode }, `- Add dark mode support using @Environment(\.colorScheme)`},
	{func(s domain.Submission) bool { return s.Animations }, "- Add smooth animations using SwiftUI transitions"},
}

var uiSteps = []planStep{
	{func(s domain.Submission) bool { return s.RoundedCorners }, "- Use rounded corners (cornerRadius: 12-20) throughout"},
	{func(s domain.Submission) bool { return s.Gradients }, "- Incorporate gradient backgrounds where appropriate"},
}

// Compile renders the build prompt for a submission. It never fails: unknown
// palette or inspiration keys leave their slots empty.
func Compile(s domain.Submission) string {
	appName := defaultAppName
	if s.AppName != nil && *s.AppName != "" {
		appName = *s.AppName
	}

	colors, paletteDesc, ok := Palette(s.ColorPalette)
	if !ok {
		colors, paletteDesc = nil, ""
	}

	style, _ := Style(s.DesignInspiration)

	feelings := strings.Join(s.Feelings, ", ")
	mainAction := strings.ToLower(s.MainAction)

	return fmt.Sprintf(promptTemplate,
		appName,
		s.AppIdea,
		s.TargetAudience,
		s.MainAction,
		feelings,
		style,
		paletteDesc,
		colorLines(colors),
		Personality(s.PersonalitySeriousFun, s.PersonalityMinimalRich, s.PersonalityGentleMotivating),
		platform,
		bulletList(FeatureList(s)),
		mainAction,
		planLines(s, coreSteps),
		s.DesignInspiration,
		planLines(s, uiSteps),
		strings.ToLower(s.TargetAudience),
	)
}

// Personality combines the three slider scores into a paragraph. A score of 3
// is neutral and adds nothing for its axis.
func Personality(seriousFun, minimalRich, gentleMotivating int) string {
	fragments := []string{
		axis(seriousFun, "Maintain a professional, serious tone throughout.",
			"Keep the tone fun, casual, and approachable."),
		axis(minimalRich, "Focus on minimalism—only include essential features with lots of white space.",
			"Make it feature-rich with plenty of options, details, and functionality."),
		axis(gentleMotivating, "Be gentle and supportive in the language and interactions.",
			"Use motivating language and challenging prompts to push users forward."),
	}

	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			sentences = append(sentences, f)
		}
	}

	return strings.Join(sentences, " ")
}

// axis picks low for scores of 2 or less and high for scores of 4 or more.
func axis(score int, low string, high string) string {
	switch {
	case score <= 2:
		return low
	case score >= 4:
		return high
	default:
		return ""
	}
}

// FeatureList returns the phrases of the enabled feature flags in fixed order,
// or the standard fallback when none are enabled.
func FeatureList(s domain.Submission) []string {
	features := []string{}
	for _, f := range domain.Features {
		if f.Enabled(s) {
			features = append(features, f.Phrase)
		}
	}

	if len(features) == 0 {
		return []string{standardFeatures}
	}
	return features
}

func colorLines(colors []string) string {
	lines := make([]string, len(colors))
	for i, color := range colors {
		lines[i] = fmt.Sprintf("- %s: %s", colorLabel(i), color)
	}
	return strings.Join(lines, "\n")
}

func colorLabel(i int) string {
	switch i {
	case 0:
		return "Primary"
	case 1:
		return "Secondary"
	default:
		return fmt.Sprintf("Accent %d", i-1)
	}
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func planLines(s domain.Submission, steps []planStep) string {
	var b strings.Builder
	for _, step := range steps {
		b.WriteString("   ")
		if step.enabled(s) {
			b.WriteString(step.line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
