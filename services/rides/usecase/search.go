package usecase

import (
	"context"

	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/utils"
	"github.com/tawseela/tawseela/services/rides"
)

// SearchRides matches rides for a route in three widening tiers:
//
//  1. exact match on the backend, stored text as typed
//  2. normalized equality over all active rides, tolerant of Arabic
//     diacritics, tatweel and casing
//  3. bidirectional substring on the normalized text, so "بغداد الجديدة"
//     still matches a search for "بغداد"
//
// The first tier with at least one hit wins. No hit at all returns an
// empty slice, not an error.
func (uc *rideUC) SearchRides(ctx context.Context, from, to string) ([]*models.Ride, bool, error) {
	if from == "" {
		return nil, false, rides.NewValidationError("from", "required")
	}
	if to == "" {
		return nil, false, rides.NewValidationError("to", "required")
	}

	exact, fromCache, err := uc.repo.FindExactRoute(ctx, from, to)
	if err != nil {
		logger.Error("Exact route search failed",
			logger.String("from", from),
			logger.String("to", to),
			logger.Err(err))
		return nil, false, err
	}
	if len(exact) > 0 {
		return exact, fromCache, nil
	}

	all, fromCache, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, false, err
	}

	if matched := filterRides(all, from, to, utils.CityEqual); len(matched) > 0 {
		return matched, fromCache, nil
	}

	return filterRides(all, from, to, utils.CityContains), fromCache, nil
}

func filterRides(all []*models.Ride, from, to string, match func(a, b string) bool) []*models.Ride {
	matched := make([]*models.Ride, 0)
	for _, ride := range all {
		if match(ride.FromCity, from) && match(ride.ToCity, to) {
			matched = append(matched, ride)
		}
	}
	return matched
}
