package style

// Attr names a node attribute ToStyle knows how to convert.
// ENUM(anchorType, dimensions, minMax, position, rotate, presence, hAlign, margin, para, font, fill, border)
type Attr string

// Common attribute sets.
var (
	// Box covers geometry and visibility of any laid out node.
	Box = []Attr{AttrAnchorType, AttrDimensions, AttrPosition, AttrPresence, AttrRotate, AttrHAlign, AttrMargin}
	// Decoration covers sub-objects resolving their own styles.
	Decoration = []Attr{AttrPara, AttrFont, AttrFill, AttrBorder}
)
