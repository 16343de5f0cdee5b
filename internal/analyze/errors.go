package analyze

import "errors"

var (
	// ErrBaseDirNotFound indicates the base mod directory does not exist.
	ErrBaseDirNotFound = errors.New("base mod directory not found")

	// ErrModDirNotFound indicates the named mod is absent from the base mod
	// directory or from the load order.
	ErrModDirNotFound = errors.New("mod directory not found")
)
