package draft

import (
	"context"
	"event-composer-backend/model"
)

// Store is the single shared mutable resource of the wizard. Writes are
// key-level merges: a patch replaces only the keys it carries and leaves
// every other key of the stored Draft intact.
type Store interface {
	// Load returns the accumulated Draft, or an empty Draft when nothing has
	// been saved yet. Unavailable or corrupt storage also yields an empty
	// Draft: it is logged and never surfaced to the caller.
	Load(ctx context.Context) *model.Draft

	// Save merges the patch into the stored Draft, last write wins per key.
	Save(ctx context.Context, patch model.DraftPatch) error

	// Clear removes the stored Draft entirely.
	Clear(ctx context.Context) error
}

func apply(d *model.Draft, patch model.DraftPatch) {
	if patch.ActiveStep != nil {
		d.ActiveStep = *patch.ActiveStep
	}
	if patch.Details != nil {
		d.Details = patch.Details
	}
	if patch.EventSettings != nil {
		d.EventSettings = patch.EventSettings
	}
	if patch.Trainers != nil {
		d.Trainers = *patch.Trainers
	}
	if patch.BannerImage != nil {
		d.BannerImage = *patch.BannerImage
	}
	if patch.EventType != nil {
		d.EventType = *patch.EventType
	}
	if patch.Tickets != nil {
		d.Tickets = *patch.Tickets
	}
}
