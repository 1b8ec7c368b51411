package handler

import (
	"errors"

	"cricket-scorecard-api/internal/repository"
	"cricket-scorecard-api/pkg/apierror"
)

// storeError translates store sentinels into API errors. A missing player
// surfaces as 404 with the exact message clients match on; an unreachable
// store surfaces as 503. Anything else is a plain 500.
func storeError(err error) *apierror.Error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apierror.NotFound("Player not found")
	case errors.Is(err, repository.ErrUnavailable):
		return apierror.ServiceUnavailable("")
	default:
		return apierror.InternalError("")
	}
}
