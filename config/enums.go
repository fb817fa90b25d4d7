package config

// Specification of requested output type.
// ENUM(html, tree)
type OutputFmt int

// Ext returns file name extension for the output format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtHtml:
		return ".html"
	case OutputFmtTree:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
