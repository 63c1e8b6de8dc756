// Package overlay holds the preview overlay state machine.
//
// The overlay is either hidden or visible. It becomes visible when a card image is
// clicked and hides again only on the close control or on a click whose target is the
// overlay background. Nothing else changes its state.
package overlay

import "fmt"

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Preview is what the visible overlay shows.
type Preview struct {
	ImageURL string `json:"image_url"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	// Index is the position of the clicked card in the rendered sequence.
	Index int `json:"index"`
}

// Caption combines the product name and its formatted price.
func (p Preview) Caption() string {
	return fmt.Sprintf("%s - %s", p.Name, p.Price)
}

type Controller struct {
	state   State
	preview Preview
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Visible() bool {
	return c.state == Visible
}

// Preview returns the shown preview, if any.
func (c *Controller) Preview() (Preview, bool) {
	if c.state != Visible {
		return Preview{}, false
	}
	return c.preview, true
}

// Open shows p. Opening while visible replaces the preview.
func (c *Controller) Open(p Preview) {
	c.preview = p
	c.state = Visible
}

// Close handles the explicit close control.
func (c *Controller) Close() {
	c.state = Hidden
	c.preview = Preview{}
}

// Click handles a click inside the overlay. Only clicks on the background close it.
func (c *Controller) Click(onBackground bool) {
	if onBackground {
		c.Close()
	}
}
