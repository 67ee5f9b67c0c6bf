package models

import "errors"

// Domain-specific errors for roster handling
var (
	// ErrEmptyRoster indicates that a roster source yielded no items
	ErrEmptyRoster = errors.New("roster is empty")

	// ErrDuplicateItemID indicates that two roster items share the same ID
	ErrDuplicateItemID = errors.New("duplicate item id")

	// ErrEmptyItemName indicates that a roster item has a blank name
	ErrEmptyItemName = errors.New("item name is empty")

	// ErrItemNotFound indicates that no roster item has the requested ID
	ErrItemNotFound = errors.New("item not found")
)
