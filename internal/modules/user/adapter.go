// README: Adapter exposing the user store as the donation service's directory.
package user

import (
	"context"
	"errors"

	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

// Directory adapts the user store to the shape the donation lifecycle
// consumes: profile snapshots for tier classification and impact updates.
type Directory struct {
	store *Store
}

func NewDirectory(store *Store) *Directory {
	return &Directory{store: store}
}

func (d *Directory) DonorProfile(ctx context.Context, id types.ID) (*donation.DonorProfile, error) {
	p, err := d.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donation.DonorProfile{
		Role:            string(p.Role),
		TotalDonations:  p.DonorInfo.TotalDonations,
		MealsProvided:   p.DonorInfo.MealsProvided,
		IsVerified:      p.DonorInfo.IsVerified,
		HasOrganization: p.DonorInfo.HasOrganization,
	}, nil
}

func (d *Directory) RecordDonation(ctx context.Context, id types.ID, servings int) error {
	return d.store.RecordDonation(ctx, id, servings)
}

func (d *Directory) CountUsersByRole(ctx context.Context) (donation.UserCounts, error) {
	counts, err := d.store.CountByRole(ctx)
	if err != nil {
		return donation.UserCounts{}, err
	}
	out := donation.UserCounts{
		Volunteers: counts[types.RoleVolunteer],
		NGOs:       counts[types.RoleNGO],
	}
	for _, n := range counts {
		out.Total += n
	}
	return out, nil
}
