package candidate

import (
	"errors"
	"fmt"
	"strings"
)

var ErrStepIncomplete = errors.New("profile step incomplete")

type StepIncompleteError struct {
	Step string
}

func (e *StepIncompleteError) Error() string {
	return fmt.Sprintf("complete the %q step before finishing your profile", e.Step)
}

func (e *StepIncompleteError) Unwrap() error {
	return ErrStepIncomplete
}

type Step struct {
	ID    string
	Title string
	done  func(d *CandidateDetails) bool
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

var Steps = []Step{
	{
		ID:    "personal",
		Title: "Personal Information",
		done: func(d *CandidateDetails) bool {
			return filled(d.Phone) && filled(d.Address)
		},
	},
	{
		ID:    "professional",
		Title: "Professional Details",
		done: func(d *CandidateDetails) bool {
			return filled(d.CurrentPosition) && d.ExperienceYears != nil
		},
	},
	{
		ID:    "education",
		Title: "Education & Skills",
		done: func(d *CandidateDetails) bool {
			return filled(d.Education) && len(d.Skills) > 0
		},
	},
	{
		ID:    "bio",
		Title: "About You",
		done: func(d *CandidateDetails) bool {
			return filled(d.Bio)
		},
	},
}

// ValidateSteps returns the first step that is not complete.
func ValidateSteps(d *CandidateDetails) error {
	for _, s := range Steps {
		if !s.done(d) {
			return &StepIncompleteError{Step: s.ID}
		}
	}
	return nil
}

func Progress(d *CandidateDetails) ProgressResponse {
	resp := ProgressResponse{TotalSteps: len(Steps)}
	if d == nil {
		d = &CandidateDetails{}
	}
	for _, s := range Steps {
		ok := s.done(d)
		resp.Steps = append(resp.Steps, StepStatus{ID: s.ID, Title: s.Title, Complete: ok})
		if ok {
			resp.CompletedSteps++
		} else if resp.NextStep == "" {
			resp.NextStep = s.ID
		}
	}
	resp.Percent = resp.CompletedSteps * 100 / resp.TotalSteps
	resp.ProfileCompleted = d.ProfileCompleted
	return resp
}
