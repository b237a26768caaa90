// Package api exposes the boost tracker over HTTP for the web frontend.
package api

import (
	"github.com/MilosMiki/GPGSL-boosts/internal/service"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store         service.Storage
	messages      service.MessageSource
	announcements service.AnnouncementSource
}

// NewHandler creates a Handler over the persistence layer and forum client.
func NewHandler(store service.Storage, messages service.MessageSource, announcements service.AnnouncementSource) *Handler {
	return &Handler{
		store:         store,
		messages:      messages,
		announcements: announcements,
	}
}
