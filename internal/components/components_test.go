package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/felixbrock/designkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func TestJSON(t *testing.T) {
	out := render(t, JSON(map[string]any{"success": true}))
	assert.JSONEq(t, `{"success":true}`, out)
}

func TestError(t *testing.T) {
	out := render(t, Error(404, "Design Kit Not Found", "<script>x</script>"))

	assert.Contains(t, out, "<h1>Design Kit Not Found</h1>")
	assert.Contains(t, out, "&lt;script&gt;x&lt;/script&gt;")
	assert.NotContains(t, out, "<script>x")
	assert.Contains(t, out, `<p class="code">404</p>`)
}

func TestIndex(t *testing.T) {
	out := render(t, Index())

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Build Your First App</title>")
	assert.Contains(t, out, "<h1>Get your free app design kit</h1>")
}

func TestError_IntoNonBuffer(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Error(500, "Internal server error", "Sorry").Render(context.Background(), &sb))

	assert.Contains(t, sb.String(), `<p class="code">500</p>`)
	assert.True(t, strings.HasSuffix(sb.String(), "</main></body></html>"))
}

func TestResultsEmail(t *testing.T) {
	out := render(t, ResultsEmail(domain.ResultsEmail{
		Name:       "Ada & Co",
		AppName:    "Habit Hero",
		ResultsUrl: "https://kit.example.com/results/sub-1",
		Year:       2026,
	}))

	assert.Contains(t, out, "Your Habit Hero Design Kit is Ready! 🎨")
	assert.Contains(t, out, "Hi Ada &amp; Co!")
	assert.Contains(t, out, `href="https://kit.example.com/results/sub-1"`)
	assert.Contains(t, out, "© 2026 appin30days.com")
}

func TestResultsEmail_UnsafeUrl(t *testing.T) {
	out := render(t, ResultsEmail(domain.ResultsEmail{ResultsUrl: "javascript:alert(1)"}))
	assert.NotContains(t, out, "javascript:alert")
}

func TestResults(t *testing.T) {
	prompt := "# Build Habit Hero - iOS App\n\n## App Overview\n\n- **Core action**: Track"
	appName := "Habit Hero"

	out := render(t, Results(domain.Results{
		Id:              "sub-1",
		AppName:         &appName,
		AppIdea:         "A habit tracker",
		TargetAudience:  "Students",
		MainAction:      "Track progress",
		Feelings:        []string{domain.FeelingCalm, domain.FeelingFun},
		ColorPalette:    domain.PaletteOceanVibes,
		GeneratedPrompt: &prompt,
		MoodboardImages: []string{"https://images.unsplash.com/a"},
	}))

	assert.Contains(t, out, "<title>Habit Hero Design Kit</title>")
	assert.Contains(t, out, "<h1>Build Habit Hero - iOS App</h1>")
	assert.Contains(t, out, "<strong>Core action</strong>")
	assert.Contains(t, out, `src="https://images.unsplash.com/a"`)
	assert.Contains(t, out, "#006BA6")
	assert.Contains(t, out, "Calm &amp; peaceful, Fun &amp; playful")
}

func TestResults_Pending(t *testing.T) {
	out := render(t, Results(domain.Results{Id: "sub-1"}))

	assert.Contains(t, out, "<title>Your App Design Kit</title>")
	assert.Contains(t, out, `http-equiv="refresh"`)
	assert.Contains(t, out, "Creating your design kit...")
}
