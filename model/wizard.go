package model

type WizardState struct {
	ActiveStep string       `json:"activeStep"`
	Steps      []StepStatus `json:"steps"`
}

type StepStatus struct {
	ID     string `json:"id"`
	Done   bool   `json:"done"`
	Active bool   `json:"active"`
}
