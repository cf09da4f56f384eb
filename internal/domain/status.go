package domain

import "strings"

// Status enumerates the airing status of an anime as reported by the
// upstream catalog.
type Status string

const (
	StatusFinished       Status = "FINISHED"
	StatusReleasing      Status = "RELEASING"
	StatusNotYetReleased Status = "NOT_YET_RELEASED"
	StatusCancelled      Status = "CANCELLED"
	StatusHiatus         Status = "HIATUS"
)

// ParseStatus converts an upstream status string into a Status value.
// Unknown or empty values fall back to StatusFinished so that a malformed
// upstream record never produces an invalid enum member.
func ParseStatus(s string) Status {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusFinished:
		return StatusFinished
	case StatusReleasing:
		return StatusReleasing
	case StatusNotYetReleased:
		return StatusNotYetReleased
	case StatusCancelled:
		return StatusCancelled
	case StatusHiatus:
		return StatusHiatus
	default:
		return StatusFinished
	}
}
