// Package services defines the business logic for the anime catalog and the
// per-user favorites. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer. Upstream communication failures are not redefined here; they
// propagate as anilist.ErrUnavailable from the gateway.
package services

import "errors"

var (
	// ErrAnimeNotFound indicates that the requested anime does not exist in
	// the upstream catalog.
	ErrAnimeNotFound = errors.New("anime not found")

	// ErrFavoriteNotFound indicates that no favorite exists for the given
	// (anime, user) pair.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrFavoriteExists is returned when a user attempts to favorite an anime
	// that is already in their favorites.
	ErrFavoriteExists = errors.New("anime already in user favorites")
)
