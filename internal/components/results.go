package components

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/felixbrock/designkit/internal/brief"
	"github.com/felixbrock/designkit/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const displayAppName = "Your App"

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Results renders the design kit page. Until the prompt has been generated it
// shows a loading state that refreshes itself.
func Results(r domain.Results) templ.Component {
	appName := displayAppName
	if r.AppName != nil && *r.AppName != "" {
		appName = *r.AppName
	}

	return layout(appName+" Design Kit", func(h *html) {
		if r.GeneratedPrompt == nil {
			h.raw(`<meta http-equiv="refresh" content="3">`)
			h.raw(`<main class="loading"><p>Creating your design kit...</p></main>`)
			return
		}

		h.raw(`<main class="results"><header><h1>Your `)
		h.text(appName)
		h.raw(` Design Kit is Ready! 🎨</h1><p>`)
		h.text(r.AppIdea)
		h.raw(`</p></header>`)

		if len(r.MoodboardImages) > 0 {
			h.raw(`<section><h2>Visual Moodboard</h2><div class="moodboard">`)
			for _, u := range r.MoodboardImages {
				h.raw(`<img loading="lazy" alt="Mood board image" src="`)
				h.attrURL(u)
				h.raw(`">`)
			}
			h.raw(`</div></section>`)
		}

		if colors, _, ok := brief.Palette(r.ColorPalette); ok {
			h.raw(`<section><h2>Your Color Palette</h2><div class="palette">`)
			for _, c := range colors {
				h.rawf(`<div class="swatch" style="background-color: %s">`, templ.EscapeString(c))
				h.text(c)
				h.raw(`</div>`)
			}
			h.raw(`</div></section>`)
		}

		h.raw(`<section><h2>Your Claude Code Prompt</h2><article class="prompt">`)
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(*r.GeneratedPrompt), &buf); err != nil {
			h.raw(`<pre>`)
			h.text(*r.GeneratedPrompt)
			h.raw(`</pre>`)
		} else {
			h.raw(buf.String())
		}
		h.raw(`</article></section>`)

		h.raw(`<section><h2>Design Brief</h2><dl>`)
		h.raw(`<dt>Target users</dt><dd>`)
		h.text(r.TargetAudience)
		h.raw(`</dd><dt>Main action</dt><dd>`)
		h.text(r.MainAction)
		h.raw(`</dd><dt>Feelings</dt><dd>`)
		for i, f := range r.Feelings {
			if i > 0 {
				h.raw(`, `)
			}
			h.text(f)
		}
		h.raw(`</dd></dl></section></main>`)
	})
}
