package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/felixbrock/designkit/internal/domain"
)

const gradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

// ResultsEmail renders the HTML body of the "design kit ready" email.
func ResultsEmail(e domain.ResultsEmail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}

		h.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>`)
		h.raw(`<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">`)

		h.rawf(`<div style="background: %s; padding: 40px 20px; text-align: center; border-radius: 20px 20px 0 0;">`, gradient)
		h.raw(`<h1 style="color: white; margin: 0; font-size: 32px;">Your `)
		h.text(e.AppName)
		h.raw(` Design Kit is Ready! 🎨</h1></div>`)

		h.raw(`<div style="background: white; padding: 40px 30px; border-radius: 0 0 20px 20px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">`)
		h.raw(`<p style="font-size: 18px; margin-bottom: 20px;">Hi `)
		h.text(e.Name)
		h.raw(`!</p>`)
		h.raw(`<p style="margin-bottom: 20px;">Your custom app design kit is ready to view. We've created:</p>`)
		h.raw(`<ul style="margin-bottom: 30px; padding-left: 20px;">`)
		for _, item := range [][2]string{
			{"Visual Moodboard", "9 curated images matching your app's vibe"},
			{"Custom Color Palette", "Perfectly matched colors with hex codes"},
			{"Claude Code Prompt", "Ready-to-use prompt to start building"},
			{"Complete Design Brief", "All your preferences in one place"},
		} {
			h.raw(`<li style="margin-bottom: 10px;"><strong>`)
			h.text(item[0])
			h.raw(`</strong> - `)
			h.text(item[1])
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)

		h.raw(`<div style="text-align: center; margin: 40px 0;"><a href="`)
		h.attrURL(e.ResultsUrl)
		h.rawf(`" style="display: inline-block; background: %s; color: white; padding: 16px 32px; text-decoration: none; border-radius: 50px; font-weight: bold; font-size: 18px;">View Your Design Kit →</a></div>`, gradient)

		h.raw(`<div style="background: #f0f9ff; border-left: 4px solid #667eea; padding: 20px; margin: 30px 0; border-radius: 8px;">`)
		h.raw(`<h3 style="margin-top: 0; color: #667eea;">Ready to Build Your App?</h3>`)
		h.raw(`<p style="margin-bottom: 15px;">Join our course to learn how to use Claude Code and AI to build real iOS apps—no coding experience needed.</p>`)
		h.raw(`<a href="https://www.appin30days.com" style="color: #667eea; text-decoration: none; font-weight: bold;">Learn More About the Course →</a></div>`)

		h.raw(`<p style="color: #666; font-size: 14px; margin-top: 40px; padding-top: 20px; border-top: 1px solid #eee;">Questions? Just reply to this email.<br>We're here to help you bring your app idea to life!</p>`)
		h.raw(`</div>`)

		h.raw(`<div style="text-align: center; padding: 20px; color: #999; font-size: 12px;"><p>Build Your First App with Claude Code</p>`)
		h.rawf(`<p>© %d appin30days.com</p></div>`, e.Year)
		h.raw(`</body></html>`)

		return h.err
	})
}
