package visual

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BaseCSS gives layout classes their meaning.
const BaseCSS = `.xfaPosition { position: relative; }
.xfaLrTb, .xfaRlTb, .xfaTb { display: flex; flex-direction: column; align-items: stretch; }
.xfaLrTb, .xfaRlTb { flex-flow: row wrap; }
.xfaRlTb { flex-direction: row-reverse; }
.xfaRow, .xfaRlRow { display: flex; flex-direction: row; align-items: stretch; }
.xfaRlRow { flex-direction: row-reverse; }
.xfaTable { display: flex; flex-direction: column; }
.xfaWrapper { display: flex; flex-direction: column; }
.xfaWrapped { width: 100%; height: 100%; }
.xfaBorder { position: absolute; background: transparent; pointer-events: none; }
.xfaRich { white-space: pre-wrap; overflow-wrap: break-word; }
.xfaOverflow { overflow: hidden; }
.xfaContinued { position: relative; }
@media screen { .xfaPrintOnly { display: none; } }
`

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// HTMLNode converts fragment tree to HTML node tree.
func (f *Fragment) HTMLNode() *html.Node {
	n := element(f.Tag)
	if f.ID != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: f.ID})
	}
	if len(f.Class) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(f.Class, " ")})
	}
	if f.Style.Len() > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: f.Style.Declarations()})
	}
	if f.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: f.Text})
	}
	for _, c := range f.Children {
		n.AppendChild(c.HTMLNode())
	}
	return n
}

// RenderHTML writes fragment tree as HTML snippet.
func RenderHTML(w io.Writer, f *Fragment) error {
	if err := html.Render(w, f.HTMLNode()); err != nil {
		return fmt.Errorf("unable to render fragment: %w", err)
	}
	return nil
}

// RenderDocument writes complete HTML document with f as body content.
func RenderDocument(w io.Writer, f *Fragment, title string) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html")
	head := element("head")
	meta := element("meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	t := element("title")
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	st := element("style")
	st.AppendChild(&html.Node{Type: html.TextNode, Data: BaseCSS})
	head.AppendChild(st)
	root.AppendChild(head)

	body := element("body")
	body.AppendChild(f.HTMLNode())
	root.AppendChild(body)
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("unable to render document: %w", err)
	}
	return nil
}
