package domain

import "errors"

var (
	ErrKidNotFound  = errors.New("kid not found")
	ErrGiftNotFound = errors.New("gift not found")
	ErrEmptyUpdate  = errors.New("no data to update")
)
