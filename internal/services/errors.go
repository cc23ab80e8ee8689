package services

import "errors"

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized: invalid or expired token")
	ErrFoodNotFound       = errors.New("food not found")
	ErrPetNotFound        = errors.New("pet not found")
)
