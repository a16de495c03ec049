package util

import "errors"

var (
	ErrStudentNotFound     = errors.New("student progress not found")
	ErrAlreadyPlaced       = errors.New("placement already completed")
	ErrPlacementRequired   = errors.New("placement not completed yet")
	ErrDuplicateAttempt    = errors.New("attempt already processed")
	ErrUnknownSkill        = errors.New("unknown skill name")
	ErrBadgeNotFound       = errors.New("badge not found")
	ErrBadgeCriteriaLocked = errors.New("badge criteria locked by existing earned records")
	ErrItemNotFound        = errors.New("shop item not found")
	ErrAlreadyOwned        = errors.New("item already owned")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrOutOfStock          = errors.New("item out of stock")
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
)
