package wizard

import (
	"event-composer-backend/model"
)

// Step identifies one screen of the event-creation wizard. The identifiers
// are part of the persisted draft and of the HTTP surface, so they are stable
// strings rather than iota values.
type Step string

const (
	StepCreate        Step = "create"
	StepEventSettings Step = "set-eventsettings"
	StepTrainers      Step = "set-ticketingdetailsT"
	StepImages        Step = "set-images"
	StepTicketing     Step = "set-ticketingdetails"
	StepPreview       Step = "preview-event"
)

// order is the single source of truth for step sequencing. Forward moves one
// position at a time after the step's own validation; backward moves one
// position unconditionally. There is no jump to a non-adjacent step.
var order = []Step{
	StepCreate,
	StepEventSettings,
	StepTrainers,
	StepImages,
	StepTicketing,
	StepPreview,
}

func (s Step) index() int {
	for i, step := range order {
		if step == s {
			return i
		}
	}
	return -1
}

func (s Step) Valid() bool {
	return s.index() >= 0
}

// Next returns the step after s, or s itself when s is terminal.
func (s Step) Next() Step {
	i := s.index()
	if i < 0 || i == len(order)-1 {
		return s
	}
	return order[i+1]
}

// Prev returns the step before s, or s itself when s is the first step.
func (s Step) Prev() Step {
	i := s.index()
	if i <= 0 {
		return s
	}
	return order[i-1]
}

// activeStep normalises the persisted value: a missing or unknown step
// rehydrates the wizard at the first screen.
func activeStep(d *model.Draft) Step {
	s := Step(d.ActiveStep)
	if !s.Valid() {
		return StepCreate
	}
	return s
}

// statuses derives the progress indicator from position alone; "done" is not
// separate state.
func statuses(active Step) []model.StepStatus {
	current := active.index()

	out := make([]model.StepStatus, 0, len(order))
	for i, step := range order {
		out = append(out, model.StepStatus{
			ID:     string(step),
			Done:   i < current,
			Active: i == current,
		})
	}
	return out
}
