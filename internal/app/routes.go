package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/felixbrock/designkit/internal/domain"
	"github.com/google/uuid"
)

type submissionReq struct {
	SubmissionId string `json:"submissionId"`
}

type errorResp struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Details []fieldError `json:"details,omitempty"`
}

type submitResp struct {
	Success      bool   `json:"success"`
	SubmissionId string `json:"submissionId"`
}

type generateResp struct {
	Success bool     `json:"success"`
	Prompt  string   `json:"prompt"`
	Images  []string `json:"images"`
}

type emailResp struct {
	Success bool   `json:"success"`
	EmailId string `json:"emailId,omitempty"`
	Message string `json:"message,omitempty"`
}

type resultsResp struct {
	Success bool           `json:"success"`
	Data    domain.Results `json:"data"`
}

// Handler returns the routed http.Handler of the app.
func (a *App) Handler() http.Handler {
	a.setup()

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", ComponentHandler(a.index))
	mux.Handle("GET /results/{id}", ComponentHandler(a.resultsPage))
	mux.Handle("GET /healthz", ComponentHandler(a.health))
	mux.Handle("GET /metrics", a.metrics.handler())
	if a.Config.StaticDir != "" {
		mux.Handle("GET /static/",
			http.StripPrefix("/static/", http.FileServer(http.Dir(a.Config.StaticDir))))
	}

	mux.Handle("POST /api/submit", ComponentHandler(a.submit))
	mux.Handle("POST /api/generate-prompt", ComponentHandler(a.generatePrompt))
	mux.Handle("POST /api/send-email", ComponentHandler(a.sendEmail))
	mux.Handle("GET /api/results/{id}", ComponentHandler(a.results))

	return mux
}

func (a *App) json(code int, v any) *AppResp {
	return &AppResp{Component: a.ComponentBuilder.JSON(v), Code: code, Message: http.StatusText(code), ContentType: "application/json"}
}

func (a *App) jsonErr(ctx errCtx, msg string, err error) *AppResp {
	resp := a.json(ctx.Code, errorResp{Success: false, Error: msg})
	resp.Error = err
	return resp
}

func (a *App) page(ctx errCtx, err error) *AppResp {
	return &AppResp{Component: a.ComponentBuilder.Error(ctx.Code, ctx.Title, ctx.Msg), Code: ctx.Code, Message: ctx.Title, ContentType: "text/html", Error: err}
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *AppResp {
	return &AppResp{Component: a.ComponentBuilder.Index(), Code: 200, Message: "OK", ContentType: "text/html"}
}

func (a *App) health(w http.ResponseWriter, r *http.Request) *AppResp {
	return a.json(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) resultsPage(w http.ResponseWriter, r *http.Request) *AppResp {
	submission, err := a.SubmissionRepo.Read(r.Context(), r.PathValue("id"))

	if errors.Is(err, domain.ErrNotFound) {
		return a.page(get404(), nil)
	} else if err != nil {
		return a.page(get500(), err)
	}

	return &AppResp{Component: a.ComponentBuilder.Results(submission.Results()), Code: 200, Message: "OK", ContentType: "text/html"}
}

func (a *App) submit(w http.ResponseWriter, r *http.Request) *AppResp {
	if !a.limiter.allow(a.proxies.clientIP(r), a.now()) {
		a.metrics.submissions.WithLabelValues("rate_limited").Inc()
		return a.jsonErr(get429(), "Too many requests", nil)
	}

	body, err := Read(r.Body)

	if err != nil {
		a.metrics.submissions.WithLabelValues("invalid").Inc()
		return a.jsonErr(get400(), "Invalid form data", err)
	}

	req, err := ReadJSON[submitReq](body)

	if err != nil {
		a.metrics.submissions.WithLabelValues("invalid").Inc()
		return a.jsonErr(get400(), "Invalid form data", err)
	}

	if details := req.check(); len(details) > 0 {
		a.metrics.submissions.WithLabelValues("invalid").Inc()
		return a.json(http.StatusBadRequest, errorResp{Success: false, Error: "Invalid form data", Details: details})
	}

	submission := req.toSubmission(uuid.New().String(), a.now())

	err = a.SubmissionRepo.Insert(r.Context(), submission)

	if err != nil {
		a.metrics.submissions.WithLabelValues("failed").Inc()
		return a.jsonErr(get500(), "Failed to save submission", err)
	}

	a.metrics.submissions.WithLabelValues("ok").Inc()
	a.capture(r.Context(), domain.Event{
		Type:         "submission_created",
		SubmissionId: submission.Id,
		Properties:   map[string]any{"opted_in_marketing": submission.OptedInMarketing},
	})

	a.dispatch(submission.Id, requestOrigin(r))

	return a.json(http.StatusOK, submitResp{Success: true, SubmissionId: submission.Id})
}

func (a *App) readSubmissionId(r *http.Request) (string, error) {
	body, err := Read(r.Body)

	if err != nil {
		return "", err
	}

	req, err := ReadJSON[submissionReq](body)

	if err != nil {
		return "", err
	} else if req.SubmissionId == "" {
		return "", errors.New("missing submissionId error")
	}

	return req.SubmissionId, nil
}

func (a *App) generatePrompt(w http.ResponseWriter, r *http.Request) *AppResp {
	id, err := a.readSubmissionId(r)

	if err != nil {
		return a.jsonErr(get400(), "Missing submissionId", err)
	}

	k, err := a.GenerateKit(r.Context(), id)

	if errors.Is(err, domain.ErrNotFound) {
		return a.jsonErr(get404(), "Submission not found", nil)
	} else if err != nil {
		return a.jsonErr(get500(), "Failed to update submission", err)
	}

	return a.json(http.StatusOK, generateResp{Success: true, Prompt: k.Prompt, Images: k.Images})
}

func (a *App) sendEmail(w http.ResponseWriter, r *http.Request) *AppResp {
	id, err := a.readSubmissionId(r)

	if err != nil {
		return a.jsonErr(get400(), "Missing submissionId", err)
	}

	outcome, err := a.SendResultsEmail(r.Context(), id, requestOrigin(r))

	if errors.Is(err, domain.ErrNotFound) {
		return a.jsonErr(get404(), "Submission not found", nil)
	} else if err != nil {
		return a.jsonErr(get500(), "Failed to send email", err)
	}

	return a.json(http.StatusOK, emailResp{Success: true, EmailId: outcome.EmailId, Message: outcome.Message})
}

func (a *App) results(w http.ResponseWriter, r *http.Request) *AppResp {
	submission, err := a.SubmissionRepo.Read(r.Context(), r.PathValue("id"))

	if errors.Is(err, domain.ErrNotFound) {
		return a.jsonErr(get404(), "Results not found", nil)
	} else if err != nil {
		return a.jsonErr(get500(), "Internal server error", err)
	}

	return a.json(http.StatusOK, resultsResp{Success: true, Data: submission.Results()})
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
