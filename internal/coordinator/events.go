package coordinator

import "github.com/nguyentranbao-ct/product-catalog/internal/models"

// Event is a user input the coordinator reacts to.
type Event interface {
	event()
}

// SearchChanged carries the raw value of the search field.
type SearchChanged struct {
	Text string
}

// SortChanged carries the raw value of the sort selector.
type SortChanged struct {
	Key models.SortKey
}

// ImageClicked is a click on the image of the displayed card at Index.
type ImageClicked struct {
	Index int
}

// CloseClicked is a click on the overlay close control.
type CloseClicked struct{}

// OverlayClicked is a click inside the overlay. OnBackground is true when the target is
// the overlay background itself rather than its content.
type OverlayClicked struct {
	OnBackground bool
}

func (SearchChanged) event()  {}
func (SortChanged) event()    {}
func (ImageClicked) event()   {}
func (CloseClicked) event()   {}
func (OverlayClicked) event() {}
