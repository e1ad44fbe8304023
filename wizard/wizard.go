package wizard

import (
	"context"
	"event-composer-backend/assemble"
	"event-composer-backend/codec"
	"event-composer-backend/draft"
	"event-composer-backend/logger"
	"event-composer-backend/model"
	"event-composer-backend/response"
	"event-composer-backend/upstream"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewWizard returns the service owning the draft workflow: step validation,
// draft persistence and the final publish.
func NewWizard(store draft.Store, api upstream.API) *Wizard {
	return &Wizard{
		store: store,
		api:   api,
	}
}

type Wizard struct {
	store draft.Store
	api   upstream.API
}

// State reports the active step, the derived progress list and the draft as
// accumulated so far.
func (w *Wizard) State(ctx context.Context) (*model.WizardState, *model.Draft) {
	d := w.store.Load(ctx)
	active := activeStep(d)

	return &model.WizardState{ActiveStep: string(active), Steps: statuses(active)}, d
}

// Back moves one step backwards without validation and without touching any
// saved draft data.
func (w *Wizard) Back(ctx context.Context) (*model.WizardState, error) {
	d := w.store.Load(ctx)
	prev := string(activeStep(d).Prev())

	if err := w.store.Save(ctx, model.DraftPatch{ActiveStep: &prev}); err != nil {
		return nil, fmt.Errorf("back: error persisting active step: %w", err)
	}

	return &model.WizardState{ActiveStep: prev, Steps: statuses(Step(prev))}, nil
}

// SaveDetails validates the event-details slice whole, merges it and
// advances past the first step.
func (w *Wizard) SaveDetails(ctx context.Context, details model.Details) error {
	missing := details.Title == "" || details.Description == "" || details.Category == "" ||
		details.StartDate == "" || details.EndDate == "" || details.StartTime == "" ||
		details.EndTime == "" || details.Location == "" || details.Type == ""
	if missing {
		return response.IncompleteStep("Please fill in all the event details before continuing")
	}
	if details.Type != model.EventInPerson && details.Type != model.EventVirtual {
		return response.InvalidData(fmt.Sprintf("unknown event type: %s", details.Type))
	}

	return w.saveAndAdvance(ctx, StepCreate, model.DraftPatch{Details: &details})
}

// SaveSettings merges the free-form event settings; nothing is required.
func (w *Wizard) SaveSettings(ctx context.Context, settings model.EventSettings) error {
	return w.saveAndAdvance(ctx, StepEventSettings, model.DraftPatch{EventSettings: &settings})
}

// AddTrainer appends a trainer with a freshly minted disposable id and
// persists the whole sequence immediately.
func (w *Wizard) AddTrainer(ctx context.Context, trainer model.Trainer) (*model.Trainer, error) {
	if trainer.Name == "" || trainer.Description == "" {
		return nil, response.IncompleteStep("Please provide the trainer's name and description")
	}
	if trainer.Image != "" && !codec.IsDataURI(trainer.Image) {
		return nil, response.InvalidData("trainer image must be an inline-encoded upload")
	}

	trainer.ID = uuid.NewString()
	trainers := append(w.store.Load(ctx).Trainers, trainer)

	if err := w.store.Save(ctx, model.DraftPatch{Trainers: &trainers}); err != nil {
		return nil, fmt.Errorf("addTrainer: error persisting trainers: %w", err)
	}

	return &trainer, nil
}

// RemoveTrainer filters a committed trainer out by its disposable id and
// re-persists the sequence. Removing an unknown id is a no-op.
func (w *Wizard) RemoveTrainer(ctx context.Context, id string) error {
	trainers := w.store.Load(ctx).Trainers

	kept := trainers[:0]
	for _, t := range trainers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := w.store.Save(ctx, model.DraftPatch{Trainers: &kept}); err != nil {
		return fmt.Errorf("removeTrainer: error persisting trainers: %w", err)
	}

	return nil
}

// ContinueTrainers advances past the trainers step; at least one committed
// trainer is required.
func (w *Wizard) ContinueTrainers(ctx context.Context) error {
	if len(w.store.Load(ctx).Trainers) == 0 {
		return response.TrainerRequired()
	}

	return w.saveAndAdvance(ctx, StepTrainers, model.DraftPatch{})
}

// SetBanner stores the uploaded hero image inline, persisted immediately so
// a reload cannot lose it.
func (w *Wizard) SetBanner(ctx context.Context, mimeType string, data []byte) error {
	if !strings.HasPrefix(mimeType, "image/") {
		return response.NotAnImage()
	}

	uri := codec.EncodeDataURI(mimeType, data)
	if err := w.store.Save(ctx, model.DraftPatch{BannerImage: &uri}); err != nil {
		return fmt.Errorf("setBanner: error persisting banner: %w", err)
	}

	return nil
}

// RemoveBanner clears the banner and persists the clear immediately, so a
// stale banner cannot resurrect on reload.
func (w *Wizard) RemoveBanner(ctx context.Context) error {
	empty := ""
	if err := w.store.Save(ctx, model.DraftPatch{BannerImage: &empty}); err != nil {
		return fmt.Errorf("removeBanner: error clearing banner: %w", err)
	}

	return nil
}

// ContinueBanner advances past the images step; the banner must be set.
func (w *Wizard) ContinueBanner(ctx context.Context) error {
	if w.store.Load(ctx).BannerImage == "" {
		return response.BannerRequired()
	}

	return w.saveAndAdvance(ctx, StepImages, model.DraftPatch{})
}

// SetEventType persists the ticketed/free selection immediately.
func (w *Wizard) SetEventType(ctx context.Context, eventType string) error {
	if eventType != model.EventTypeTicketed && eventType != model.EventTypeFree {
		return response.InvalidData(fmt.Sprintf("unknown event type: %s", eventType))
	}

	if err := w.store.Save(ctx, model.DraftPatch{EventType: &eventType}); err != nil {
		return fmt.Errorf("setEventType: error persisting event type: %w", err)
	}

	return nil
}

// AddTicket appends a ticket with a disposable id and persists the whole
// sequence immediately. Transferability is forced off while the tenant's
// allowTransfers flag is disabled.
func (w *Wizard) AddTicket(ctx context.Context, ticket model.Ticket) (*model.Ticket, error) {
	if ticket.Name == "" || ticket.Price == "" || ticket.Type == "" {
		return nil, response.IncompleteStep("Please provide the ticket name, price and type")
	}
	if ticket.Type != model.TicketGeneral && ticket.Type != model.TicketVIP {
		return nil, response.InvalidData(fmt.Sprintf("unknown ticket type: %s", ticket.Type))
	}

	if !w.Features(ctx).AllowTransfers {
		ticket.Transferable = false
	}

	ticket.ID = uuid.NewString()
	tickets := append(w.store.Load(ctx).Tickets, ticket)

	if err := w.store.Save(ctx, model.DraftPatch{Tickets: &tickets}); err != nil {
		return nil, fmt.Errorf("addTicket: error persisting tickets: %w", err)
	}

	return &ticket, nil
}

// RemoveTicket filters a ticket out by its disposable id and re-persists.
func (w *Wizard) RemoveTicket(ctx context.Context, id string) error {
	tickets := w.store.Load(ctx).Tickets

	kept := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := w.store.Save(ctx, model.DraftPatch{Tickets: &kept}); err != nil {
		return fmt.Errorf("removeTicket: error persisting tickets: %w", err)
	}

	return nil
}

// ContinueTicketing advances to the preview. A ticketed event needs at least
// one ticket; a free event has no such requirement.
func (w *Wizard) ContinueTicketing(ctx context.Context) error {
	d := w.store.Load(ctx)
	if d.EventType == model.EventTypeTicketed && len(d.Tickets) == 0 {
		return response.TicketRequired()
	}

	return w.saveAndAdvance(ctx, StepTicketing, model.DraftPatch{})
}

// Features fetches the tenant's feature flags, failing closed: any fetch
// problem reads as every flag disabled and never blocks the flow.
func (w *Wizard) Features(ctx context.Context) model.FeatureFlags {
	flags, err := w.api.Features(ctx)
	if err != nil {
		logger.Warnf(ctx, "features: flag fetch failed, defaulting to disabled: %v", err)
		return model.FeatureFlags{}
	}

	return *flags
}

// Publish assembles the accumulated draft into one multipart submission and
// sends it upstream. The store is cleared only on success; a failed publish
// leaves the draft intact for retry.
func (w *Wizard) Publish(ctx context.Context) (*model.PublishReceipt, error) {
	d := w.store.Load(ctx)
	if d.Details == nil {
		return nil, response.IncompleteStep("Event details are missing, please complete the first step")
	}
	if d.BannerImage == "" {
		return nil, response.BannerRequired()
	}

	submission, err := assemble.Build(d)
	if err != nil {
		return nil, fmt.Errorf("publish: error assembling submission: %w", err)
	}

	receipt, err := w.api.Publish(ctx, submission)
	if err != nil {
		if err == upstream.ErrTokenExpired {
			return nil, response.TokenExpired()
		}
		if apiErr, ok := err.(*upstream.APIError); ok {
			return nil, response.PublishFailed(apiErr.Message)
		}
		return nil, fmt.Errorf("publish: error submitting event: %w", err)
	}

	if err := w.store.Clear(ctx); err != nil {
		logger.Errorf(ctx, "publish: event %s created but draft not cleared: %v", receipt.EventID, err)
	}

	return receipt, nil
}

// Discard ends the wizard session. The persisted draft is deliberately left
// in place so the user can resume later.
func (w *Wizard) Discard(ctx context.Context) {
	logger.Infof(ctx, "discard: wizard session ended, draft kept for resumption")
}

func (w *Wizard) saveAndAdvance(ctx context.Context, from Step, patch model.DraftPatch) error {
	next := string(from.Next())
	patch.ActiveStep = &next

	if err := w.store.Save(ctx, patch); err != nil {
		return fmt.Errorf("saveAndAdvance: error persisting step %s: %w", from, err)
	}

	return nil
}
