package model

const (
	EventTypeTicketed = "ticketed"
	EventTypeFree     = "free"

	EventInPerson = "in-person"
	EventVirtual  = "virtual"

	TicketGeneral = "general"
	TicketVIP     = "vip"
)

// Draft is the single aggregate record accumulated across wizard steps
// before submission. Absent slices mean the step has not been saved yet.
type Draft struct {
	ActiveStep    string         `json:"activeStep,omitempty"`
	Details       *Details       `json:"details,omitempty"`
	EventSettings *EventSettings `json:"eventSettings,omitempty"`
	Trainers      []Trainer      `json:"trainers,omitempty"`
	BannerImage   string         `json:"bannerImage,omitempty"`
	EventType     string         `json:"eventType,omitempty"`
	Tickets       []Ticket       `json:"tickets,omitempty"`
}

type Details struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

type EventSettings struct {
	ServiceFee ServiceFee `json:"serviceFee"`
}

type ServiceFee struct {
	Enabled  bool   `json:"enabled"`
	Handling string `json:"handling,omitempty"`
}

// Trainer.ID is a session-local disposable identifier minted at append time.
// It is used for list removal only and is stripped before submission.
type Trainer struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Facebook    string `json:"facebook,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
}

type Ticket struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Type         string `json:"type"`
	Transferable bool   `json:"transferable"`
}

// DraftPatch is a key-level partial write against the stored Draft. Nil
// fields leave the stored value untouched; non-nil fields replace it whole.
type DraftPatch struct {
	ActiveStep    *string        `json:"activeStep,omitempty"`
	Details       *Details       `json:"details,omitempty"`
	EventSettings *EventSettings `json:"eventSettings,omitempty"`
	Trainers      *[]Trainer     `json:"trainers,omitempty"`
	BannerImage   *string        `json:"bannerImage,omitempty"`
	EventType     *string        `json:"eventType,omitempty"`
	Tickets       *[]Ticket      `json:"tickets,omitempty"`
}

type FeatureFlags struct {
	AllowTransfers bool `json:"allowTransfers"`
	CreditSystem   bool `json:"creditSystem"`
}

type PublishReceipt struct {
	EventID string `json:"eventId"`
}
