package services

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrClassFull        = errors.New("class is full")
	ErrClassNotFound    = errors.New("class not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
)
