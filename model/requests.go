package model

type DetailsRequest struct {
	Data struct {
		Details Details `json:"details"`
	} `json:"data"`
}

type EventSettingsRequest struct {
	Data struct {
		EventSettings EventSettings `json:"eventSettings"`
	} `json:"data"`
}

type TrainerRequest struct {
	Data struct {
		Trainer Trainer `json:"trainer"`
	} `json:"data"`
}

type EventTypeRequest struct {
	Data struct {
		EventType string `json:"eventType"`
	} `json:"data"`
}

type TicketRequest struct {
	Data struct {
		Ticket Ticket `json:"ticket"`
	} `json:"data"`
}
