package render

// Recorder is a Renderer that keeps the last rendered cards.
type Recorder struct {
	Cards   []Card
	Renders int
}

func (r *Recorder) Render(cards []Card) error {
	r.Cards = cards
	r.Renders++
	return nil
}

// Names reads back the displayed names, in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		names[i] = c.Name
	}
	return names
}
