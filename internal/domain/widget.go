package domain

// Widget binds a presentation template to invocation-phase labels. A widget
// backs one or more tools and is addressable as a resource via TemplateURI.
type Widget struct {
	Identifier   string
	Title        string
	TemplateURI  string
	Invoking     string
	Invoked      string
	HTML         string
	ResponseText string
}

// Description returns the resource description advertised for the widget.
func (w Widget) Description() string {
	return w.Title + " widget markup"
}
