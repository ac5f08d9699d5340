package models

import "errors"

var (
	// ErrDistance indicates a non-positive pair separation.
	ErrDistance = errors.New("models: non-positive separation")

	// ErrEnvType indicates environment data of an unexpected concrete type.
	ErrEnvType = errors.New("models: unexpected environment type")
)
