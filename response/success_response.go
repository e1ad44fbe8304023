package response

import (
	"encoding/json"
	"event-composer-backend/model"
	"net/http"
)

type SuccessResponse struct {
	Data       *Data `json:"data"`
	StatusCode int   `json:"-"`
}

type Data struct {
	Wizard   *model.WizardState    `json:"wizard,omitempty"`
	Draft    *model.Draft          `json:"draft,omitempty"`
	Trainer  *model.Trainer        `json:"trainer,omitempty"`
	Ticket   *model.Ticket         `json:"ticket,omitempty"`
	Features *model.FeatureFlags   `json:"features,omitempty"`
	Event    *model.PublishReceipt `json:"event,omitempty"`
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}
