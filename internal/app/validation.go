package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/felixbrock/designkit/internal/domain"
	"github.com/go-playground/validator/v10"
)

type submitReq struct {
	AppIdea                     string   `json:"appIdea" validate:"required,min=10,max=200"`
	AppName                     string   `json:"appName"`
	TargetAudience              string   `json:"targetAudience" validate:"required"`
	TargetAudienceOther         string   `json:"targetAudienceOther"`
	MainAction                  string   `json:"mainAction" validate:"required"`
	Feelings                    []string `json:"feelings" validate:"min=1,max=3,unique,dive,required"`
	ColorPalette                string   `json:"colorPalette" validate:"required"`
	DesignInspiration           string   `json:"designInspiration" validate:"required"`
	PersonalitySeriousFun       int      `json:"personalitySeriousFun" validate:"min=1,max=5"`
	PersonalityMinimalRich      int      `json:"personalityMinimalRich" validate:"min=1,max=5"`
	PersonalityGentleMotivating int      `json:"personalityGentleMotivating" validate:"min=1,max=5"`
	DarkMode                    *bool    `json:"darkMode" validate:"required"`
	Animations                  *bool    `json:"animations" validate:"required"`
	Illustrations               *bool    `json:"illustrations" validate:"required"`
	Photos                      *bool    `json:"photos" validate:"required"`
	Gradients                   *bool    `json:"gradients" validate:"required"`
	RoundedCorners              *bool    `json:"roundedCorners" validate:"required"`
	Name                        string   `json:"name" validate:"required,min=2"`
	Email                       string   `json:"email" validate:"required,email"`
	OptedInMarketing            *bool    `json:"optedInMarketing" validate:"required"`
}

type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates req and reports each failing field.
func (req submitReq) check() []fieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	details := make([]fieldError, len(verrs))
	for i, fe := range verrs {
		details[i] = fieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		}
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return "Please enter a valid email"
	case "unique":
		return fmt.Sprintf("%s must not repeat", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func (req submitReq) toSubmission(id string, now time.Time) domain.Submission {
	targetAudience := req.TargetAudience
	if req.TargetAudienceOther != "" {
		targetAudience = req.TargetAudienceOther
	}

	var appName *string
	if req.AppName != "" {
		name := req.AppName
		appName = &name
	}

	name := req.Name

	return domain.Submission{
		Id:                          id,
		CreatedAt:                   now.UTC(),
		Email:                       req.Email,
		Name:                        &name,
		AppIdea:                     req.AppIdea,
		AppName:                     appName,
		TargetAudience:              targetAudience,
		MainAction:                  req.MainAction,
		Feelings:                    append([]string{}, req.Feelings...),
		ColorPalette:                req.ColorPalette,
		DesignInspiration:           req.DesignInspiration,
		PersonalitySeriousFun:       req.PersonalitySeriousFun,
		PersonalityMinimalRich:      req.PersonalityMinimalRich,
		PersonalityGentleMotivating: req.PersonalityGentleMotivating,
		DarkMode:                    *req.DarkMode,
		Animations:                  *req.Animations,
		Illustrations:               *req.Illustrations,
		Photos:                      *req.Photos,
		Gradients:                   *req.Gradients,
		RoundedCorners:              *req.RoundedCorners,
		MoodboardImages:             []string{},
		OptedInMarketing:            *req.OptedInMarketing,
	}
}
