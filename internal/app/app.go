package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/felixbrock/designkit/internal/domain"
)

type Config struct {
	Port string
	// BaseUrl overrides the request origin used in results links.
	BaseUrl        string
	ImagesPerQuery int
	JobTimeout     time.Duration
	SubmitRate     float64
	SubmitBurst    int
	EmailFrom      string
	StaticDir      string
	// TrustedProxies are IPs or CIDR ranges whose X-Forwarded-For is honoured.
	TrustedProxies []string
}

type SubmissionRepo interface {
	Insert(ctx context.Context, submission domain.Submission) error
	Read(ctx context.Context, id string) (*domain.Submission, error)
	Update(ctx context.Context, id string, patch domain.SubmissionPatch) error
}

type ImageRepo interface {
	Search(ctx context.Context, query string, perPage int) ([]string, error)
}

type MailRepo interface {
	Configured() bool
	Send(ctx context.Context, email domain.Email) (string, error)
}

type EventRepo interface {
	Capture(ctx context.Context, event domain.Event) error
}

type ComponentBuilder struct {
	Index   func() templ.Component
	Results func(results domain.Results) templ.Component
	Email   func(email domain.ResultsEmail) templ.Component
	Error   func(code int, title string, msg string) templ.Component
	JSON    func(v any) templ.Component
}

type App struct {
	SubmissionRepo   SubmissionRepo
	ImageRepo        ImageRepo
	MailRepo         MailRepo
	EventRepo        EventRepo
	ComponentBuilder ComponentBuilder
	Config           Config

	once    sync.Once
	jobs    sync.WaitGroup
	limiter *ipLimiter
	proxies proxies
	metrics *metrics
	now     func() time.Time
}

func (a *App) setup() {
	a.once.Do(func() {
		if a.Config.ImagesPerQuery <= 0 {
			a.Config.ImagesPerQuery = 3
		}
		if a.Config.JobTimeout <= 0 {
			a.Config.JobTimeout = time.Minute
		}
		if a.now == nil {
			a.now = time.Now
		}
		a.limiter = newIPLimiter(a.Config.SubmitRate, a.Config.SubmitBurst)

		p, err := parseProxies(a.Config.TrustedProxies)
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
		a.proxies = p
		a.metrics = newMetrics()
	})
}

// Start serves the app until ctx is cancelled, then drains background jobs.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.Config.Port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.Config.BaseUrl == "" {
		slog.Warn("BASE_URL not set - results links are built from the request Host header")
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	a.Wait()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Wait blocks until every dispatched background job has returned.
func (a *App) Wait() {
	a.jobs.Wait()
}
