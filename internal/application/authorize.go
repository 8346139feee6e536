package application

import (
	"context"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	repo "github.com/expoconf/conference-portal/internal/domain/repository"
)

// The caller is always an explicit parameter; these predicates are the
// whole authorization gate.

func requireAuthenticated(caller *entity.Identity) error {
	if caller == nil || caller.ID == "" {
		return entity.ErrNotConnected
	}
	return nil
}

func requireAdmin(caller *entity.Identity) error {
	if !caller.IsAdmin() {
		return entity.ErrUnauthorized
	}
	return nil
}

// requireSponsorOwnerOrAdmin passes for admins, and for callers whose
// sponsor profile funds the given conference.
func requireSponsorOwnerOrAdmin(ctx context.Context, sponsors repo.SponsorRepository, caller *entity.Identity, conferenceID string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if caller.IsAdmin() {
		return nil
	}
	owns, err := sponsors.OwnsConference(ctx, caller.ID, conferenceID)
	if err != nil {
		return err
	}
	if !owns {
		return entity.ErrUnauthorized
	}
	return nil
}
