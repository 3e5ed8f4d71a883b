package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("record not found error")

type Submission struct {
	Id                          string    `json:"id"`
	CreatedAt                   time.Time `json:"created_at"`
	Email                       string    `json:"email"`
	Name                        *string   `json:"name"`
	AppIdea                     string    `json:"app_idea"`
	AppName                     *string   `json:"app_name"`
	TargetAudience              string    `json:"target_audience"`
	MainAction                  string    `json:"main_action"`
	Feelings                    []string  `json:"feelings"`
	ColorPalette                string    `json:"color_palette"`
	DesignInspiration           string    `json:"design_inspiration"`
	PersonalitySeriousFun       int       `json:"personality_serious_fun"`
	PersonalityMinimalRich      int       `json:"personality_minimal_rich"`
	PersonalityGentleMotivating int       `json:"personality_gentle_motivating"`
	DarkMode                    bool      `json:"dark_mode"`
	Animations                  bool      `json:"animations"`
	Illustrations               bool      `json:"illustrations"`
	Photos                      bool      `json:"photos"`
	Gradients                   bool      `json:"gradients"`
	RoundedCorners              bool      `json:"rounded_corners"`
	GeneratedPrompt             *string   `json:"generated_prompt"`
	MoodboardImages             []string  `json:"moodboard_images"`
	EmailSent                   bool      `json:"email_sent"`
	OptedInMarketing            bool      `json:"opted_in_marketing"`
}

// SubmissionPatch carries the columns written back after a submission is
// created. Nil fields are left untouched.
type SubmissionPatch struct {
	GeneratedPrompt *string   `json:"generated_prompt,omitempty"`
	MoodboardImages *[]string `json:"moodboard_images,omitempty"`
	EmailSent       *bool     `json:"email_sent,omitempty"`
}

// Apply writes the set fields of p onto s.
func (p SubmissionPatch) Apply(s *Submission) {
	if p.GeneratedPrompt != nil {
		prompt := *p.GeneratedPrompt
		s.GeneratedPrompt = &prompt
	}
	if p.MoodboardImages != nil {
		s.MoodboardImages = append([]string{}, (*p.MoodboardImages)...)
	}
	if p.EmailSent != nil {
		s.EmailSent = *p.EmailSent
	}
}

// Results is the public view of a submission served to the results page.
type Results struct {
	Id              string   `json:"id"`
	AppName         *string  `json:"app_name"`
	AppIdea         string   `json:"app_idea"`
	TargetAudience  string   `json:"target_audience"`
	MainAction      string   `json:"main_action"`
	Feelings        []string `json:"feelings"`
	ColorPalette    string   `json:"color_palette"`
	GeneratedPrompt *string  `json:"generated_prompt"`
	MoodboardImages []string `json:"moodboard_images"`
}

func (s Submission) Results() Results {
	return Results{
		Id:              s.Id,
		AppName:         s.AppName,
		AppIdea:         s.AppIdea,
		TargetAudience:  s.TargetAudience,
		MainAction:      s.MainAction,
		Feelings:        s.Feelings,
		ColorPalette:    s.ColorPalette,
		GeneratedPrompt: s.GeneratedPrompt,
		MoodboardImages: s.MoodboardImages,
	}
}

type Event struct {
	Type         string
	SubmissionId string
	Properties   map[string]any
}

type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

// ResultsEmail holds the values interpolated into the results notification.
type ResultsEmail struct {
	Name       string
	AppName    string
	ResultsUrl string
	Year       int
}
