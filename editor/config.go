package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// TabWidth is the tab stop distance in cells. Zero means 4.
	TabWidth int

	// Key bindings. The zero value means DefaultKeyMap.
	KeyMap KeyMap

	// ReadOnly drops all mutating input; movement still works.
	ReadOnly bool

	// ScrollPolicy controls whether manual viewport scrolling is honored.
	ScrollPolicy ScrollPolicy

	// OnChange, when set, is called after every effective buffer change,
	// including cursor moves.
	OnChange func(ChangeEvent)
}
