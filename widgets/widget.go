package widgets

// Widget renders itself into a block of at most width columns. Height is a
// hint; widgets with natural height may ignore it.
type Widget interface {
	Render(width, height int) string
}
