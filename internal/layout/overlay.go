package layout

// Overlay is the expandable categories panel. It is independent of the
// trigger position and remembers where it was opened from.
type Overlay struct {
	Expanded bool     `json:"expanded"`
	From     Position `json:"from,omitempty"`
	Hovered  string   `json:"hovered,omitempty"`
}

// Toggle opens the panel from the given trigger position, or closes it.
func (o *Overlay) Toggle(from Position) {
	if o.Expanded {
		o.Close()
		return
	}
	o.Expanded = true
	o.From = from
}

// Close collapses the panel and clears the hovered category.
func (o *Overlay) Close() {
	o.Expanded = false
	o.Hovered = ""
}

// ClickOutside is a click on the backdrop around the panel.
func (o *Overlay) ClickOutside() {
	if o.Expanded {
		o.Close()
	}
}

// Hover marks the category under the pointer; "" clears it.
func (o *Overlay) Hover(category string) {
	if !o.Expanded {
		return
	}
	o.Hovered = category
}
