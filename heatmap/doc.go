package heatmap

import (
	"fmt"
	"strconv"
	"strings"
)

// The document builder assembles typed drawing primitives and serializes
// them once. Rendering code builds the tree; tests can inspect it
// without string-matching markup. Serialization is byte-deterministic:
// attribute order is fixed by the struct fields and nothing embeds
// timestamps or random IDs.

// Node is one SVG drawing primitive.
type Node interface {
	writeTo(sb *strings.Builder, indent string)
}

// Doc is the root SVG document.
type Doc struct {
	Width  int
	Height int
	nodes  []Node
}

// NewDoc creates an empty document of the given pixel size.
func NewDoc(width, height int) *Doc {
	return &Doc{Width: width, Height: height}
}

// Add appends nodes to the document root.
func (d *Doc) Add(nodes ...Node) {
	d.nodes = append(d.nodes, nodes...)
}

// Nodes returns the top-level nodes, for tests.
func (d *Doc) Nodes() []Node {
	return d.nodes
}

// String serializes the document.
func (d *Doc) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+"\n",
		d.Width, d.Height, d.Width, d.Height)
	for _, n := range d.nodes {
		n.writeTo(&sb, "  ")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// Escape replaces the five reserved markup characters in user-supplied
// text.
func Escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '&':
			sb.WriteString("&amp;")
		case '\'':
			sb.WriteString("&apos;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Style is a raw CSS block.
type Style struct {
	CSS string
}

func (s Style) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString("<style>")
	sb.WriteString(s.CSS)
	sb.WriteString("</style>\n")
}

// Defs wraps definition nodes (gradients).
type Defs struct {
	Children []Node
}

func (d Defs) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString("<defs>\n")
	for _, c := range d.Children {
		c.writeTo(sb, indent+"  ")
	}
	sb.WriteString(indent)
	sb.WriteString("</defs>\n")
}

// LinearGradient is a two-stop horizontal gradient definition.
type LinearGradient struct {
	ID   string
	From string
	To   string
}

func (g LinearGradient) writeTo(sb *strings.Builder, indent string) {
	fmt.Fprintf(sb, `%s<linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="0%%">`+"\n", indent, g.ID)
	fmt.Fprintf(sb, `%s  <stop offset="0%%" stop-color="%s"/>`+"\n", indent, g.From)
	fmt.Fprintf(sb, `%s  <stop offset="100%%" stop-color="%s"/>`+"\n", indent, g.To)
	fmt.Fprintf(sb, "%s</linearGradient>\n", indent)
}

// Group is a container translating its children by (X, Y). An optional
// Class enables hover styling.
type Group struct {
	X        int
	Y        int
	Class    string
	Children []Node
}

func (g *Group) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString("<g")
	if g.Class != "" {
		fmt.Fprintf(sb, ` class="%s"`, g.Class)
	}
	if g.X != 0 || g.Y != 0 {
		fmt.Fprintf(sb, ` transform="translate(%d,%d)"`, g.X, g.Y)
	}
	sb.WriteString(">\n")
	for _, c := range g.Children {
		c.writeTo(sb, indent+"  ")
	}
	sb.WriteString(indent)
	sb.WriteString("</g>\n")
}

// Add appends children to the group.
func (g *Group) Add(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

// Rect is a rectangle primitive.
type Rect struct {
	X      float64
	Y      float64
	W      float64
	H      float64
	Rx     float64
	Fill   string
	Stroke string
	Class  string
	Data   [][2]string // extra data-* attributes, in order
}

func (r Rect) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s"`, num(r.X), num(r.Y), num(r.W), num(r.H))
	if r.Rx > 0 {
		fmt.Fprintf(sb, ` rx="%s"`, num(r.Rx))
	}
	if r.Fill != "" {
		fmt.Fprintf(sb, ` fill="%s"`, r.Fill)
	}
	if r.Stroke != "" {
		fmt.Fprintf(sb, ` stroke="%s"`, r.Stroke)
	}
	if r.Class != "" {
		fmt.Fprintf(sb, ` class="%s"`, r.Class)
	}
	for _, kv := range r.Data {
		fmt.Fprintf(sb, ` data-%s="%s"`, kv[0], kv[1])
	}
	sb.WriteString("/>\n")
}

// Text is a text primitive. Content is escaped on serialization.
type Text struct {
	X       float64
	Y       float64
	Content string
	Class   string
	Fill    string
	Anchor  string // text-anchor, empty for default
}

func (t Text) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	fmt.Fprintf(sb, `<text x="%s" y="%s"`, num(t.X), num(t.Y))
	if t.Class != "" {
		fmt.Fprintf(sb, ` class="%s"`, t.Class)
	}
	if t.Fill != "" {
		fmt.Fprintf(sb, ` fill="%s"`, t.Fill)
	}
	if t.Anchor != "" {
		fmt.Fprintf(sb, ` text-anchor="%s"`, t.Anchor)
	}
	sb.WriteString(">")
	sb.WriteString(Escape(t.Content))
	sb.WriteString("</text>\n")
}

// Image embeds a pre-encoded data-URI image.
type Image struct {
	X    float64
	Y    float64
	W    float64
	H    float64
	Href string
}

func (i Image) writeTo(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	fmt.Fprintf(sb, `<image x="%s" y="%s" width="%s" height="%s" href="%s"`, num(i.X), num(i.Y), num(i.W), num(i.H), i.Href)
	sb.WriteString("/>\n")
}

// num formats a coordinate without trailing zeros so output stays
// stable and compact.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
