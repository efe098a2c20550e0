package handler

import "FrameVault/internal/service"

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	auth   *service.AuthService
	frames *service.FrameService
}

// New builds a Handler.
func New(auth *service.AuthService, frames *service.FrameService) *Handler {
	return &Handler{auth: auth, frames: frames}
}
