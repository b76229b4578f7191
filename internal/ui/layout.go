package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops its
	// secondary fields.
	LayoutCompactWidth = 80
)

// Modal dimensions.
const (
	// ModalWidth is the outer width of the prompt and help modals.
	ModalWidth = 44

	// PickerModalWidth is the outer width of the file picker modal.
	PickerModalWidth = 56

	// PickerListRows caps the directory entries visible at once in the
	// file picker.
	PickerListRows = 10
)

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot poll interval for the UI.
	DefaultUIInterval = time.Second
)
