package tui

import (
	"github.com/mmcdole/nador/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ProductsLoadedMsg carries the outcome of one product fetch
type ProductsLoadedMsg struct {
	Products []domain.Product
	Err      error
}

// CategoriesLoadedMsg carries the outcome of one category fetch
type CategoriesLoadedMsg struct {
	Categories []string
	Err        error
}

// ImageOpenedMsg signals that the image viewer was launched (or failed to)
type ImageOpenedMsg struct {
	Product domain.Product
	Err     error
}

// StatusMsg sets a transient status-bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status-bar message
type ClearStatusMsg struct{}

// TickMsg advances the loading spinner
type TickMsg struct{}
