package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/felixbrock/designkit/internal/brief"
	"github.com/felixbrock/designkit/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	displayAppName    = "Your App"
	searchConcurrency = 2
)

type Kit struct {
	Prompt string
	Images []string
}

// GenerateKit compiles the build prompt and mood board of a stored submission
// and writes both back to it.
func (a *App) GenerateKit(ctx context.Context, id string) (*Kit, error) {
	a.setup()
	start := a.now()

	submission, err := a.SubmissionRepo.Read(ctx, id)

	if err != nil {
		a.metrics.kits.WithLabelValues("read_failed").Inc()
		return nil, err
	}

	prompt := brief.Compile(*submission)
	images := a.moodboard(ctx, brief.Queries(submission.Feelings, submission.DesignInspiration))

	err = a.SubmissionRepo.Update(ctx, id, domain.SubmissionPatch{
		GeneratedPrompt: &prompt,
		MoodboardImages: &images,
	})

	if err != nil {
		a.metrics.kits.WithLabelValues("update_failed").Inc()
		return nil, fmt.Errorf("update submission %s: %w", id, err)
	}

	a.metrics.kits.WithLabelValues("ok").Inc()
	a.metrics.kitDuration.Observe(a.now().Sub(start).Seconds())
	a.capture(ctx, domain.Event{Type: "kit_generated", SubmissionId: id, Properties: map[string]any{"images": len(images)}})

	return &Kit{Prompt: prompt, Images: images}, nil
}

// moodboard searches the queries concurrently, at most searchConcurrency at a
// time. A failed query contributes no images and does not stop the others;
// results keep query order.
func (a *App) moodboard(ctx context.Context, queries []string) []string {
	images := []string{}
	if a.ImageRepo == nil {
		slog.Info("Image search not configured - skipping moodboard generation")
		return images
	}

	results := make([][]string, len(queries))
	var g errgroup.Group
	g.SetLimit(searchConcurrency)

	for i, query := range queries {
		g.Go(func() error {
			urls, err := a.ImageRepo.Search(ctx, query, a.Config.ImagesPerQuery)
			if err != nil {
				a.metrics.imageQueries.WithLabelValues("failed").Inc()
				return fmt.Errorf("image query %q: %w", query, err)
			}
			a.metrics.imageQueries.WithLabelValues("ok").Inc()
			results[i] = urls
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "queries", len(queries))
	}

	for _, urls := range results {
		images = append(images, urls...)
	}
	return images
}

type EmailOutcome struct {
	EmailId string
	Message string
}

// SendResultsEmail mails the results link for a submission once. It is a
// no-op when no mail collaborator is configured or the email already went out.
func (a *App) SendResultsEmail(ctx context.Context, id string, origin string) (*EmailOutcome, error) {
	a.setup()

	if a.MailRepo == nil || !a.MailRepo.Configured() {
		slog.Info("Email service not configured - skipping email send")
		a.metrics.emails.WithLabelValues("unconfigured").Inc()
		return &EmailOutcome{Message: "Email service not configured"}, nil
	}

	submission, err := a.SubmissionRepo.Read(ctx, id)

	if err != nil {
		return nil, err
	}

	if submission.EmailSent {
		a.metrics.emails.WithLabelValues("duplicate").Inc()
		return &EmailOutcome{Message: "Email already sent"}, nil
	}

	appName := displayAppName
	if submission.AppName != nil && *submission.AppName != "" {
		appName = *submission.AppName
	}
	name := "there"
	if submission.Name != nil && *submission.Name != "" {
		name = *submission.Name
	}

	var html bytes.Buffer
	err = a.ComponentBuilder.Email(domain.ResultsEmail{
		Name:       name,
		AppName:    appName,
		ResultsUrl: fmt.Sprintf("%s/results/%s", a.origin(origin), id),
		Year:       a.now().Year(),
	}).Render(ctx, &html)

	if err != nil {
		return nil, fmt.Errorf("render email: %w", err)
	}

	emailId, err := a.MailRepo.Send(ctx, domain.Email{
		From:    a.Config.EmailFrom,
		To:      []string{submission.Email},
		Subject: fmt.Sprintf("%s Design Kit Ready! 🎨", appName),
		Html:    html.String(),
	})

	if err != nil {
		a.metrics.emails.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("send email: %w", err)
	}

	sent := true
	err = a.SubmissionRepo.Update(ctx, id, domain.SubmissionPatch{EmailSent: &sent})

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "submission", id)
	}

	a.metrics.emails.WithLabelValues("sent").Inc()
	a.capture(ctx, domain.Event{Type: "email_sent", SubmissionId: id})

	return &EmailOutcome{EmailId: emailId}, nil
}

// dispatch runs kit generation and the results email in the background. The
// caller never waits; failures are only logged.
func (a *App) dispatch(id string, origin string) {
	a.setup()

	run := func(name string, job func(ctx context.Context) error) {
		a.jobs.Add(1)
		go func() {
			defer a.jobs.Done()

			ctx, cancel := context.WithTimeout(context.Background(), a.Config.JobTimeout)
			defer cancel()

			if err := job(ctx); err != nil {
				slog.Error(fmt.Sprintf("Error occured: %s", err.Error()), "job", name, "submission", id)
			}
		}()
	}

	run("generate-kit", func(ctx context.Context) error {
		_, err := a.GenerateKit(ctx, id)
		return err
	})
	run("send-email", func(ctx context.Context) error {
		_, err := a.SendResultsEmail(ctx, id, origin)
		return err
	})
}

func (a *App) capture(ctx context.Context, event domain.Event) {
	if a.EventRepo == nil {
		return
	}
	if err := a.EventRepo.Capture(ctx, event); err != nil {
		slog.Warn("event capture failed", "event", event.Type, "error", err)
	}
}

func (a *App) origin(requestOrigin string) string {
	if a.Config.BaseUrl != "" {
		return a.Config.BaseUrl
	}
	return requestOrigin
}
