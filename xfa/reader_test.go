package xfa

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"formtree/form"
)

const sampleTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<xdp:xdp xmlns:xdp="http://ns.adobe.com/xdp/">
<template xmlns="http://www.xfa.org/schema/xfa-template/3.3/" name="sample">
  <subform name="page" layout="tb" w="200pt" h="1in" id="page1">
    <font typeface="Myriad Pro" size="10pt" weight="bold"/>
    <draw name="title" minH="5mm" anchorType="bottomCenter" rotate="450">
      <para hAlign="center" textIndent="-4pt" marginLeft="2pt"/>
      <value><text>Cafe&#x301; menu</text></value>
      <border hand="left">
        <edge thickness="2pt"><color value="255,0,0"/></edge>
        <edge thickness="1pt"/>
        <corner radius="3pt"/>
        <margin topInset="1pt" leftInset="2pt"/>
      </border>
    </draw>
    <subform name="table" layout="table" columnWidths="20 30mm bogus">
      <subform name="row" layout="row">
        <field name="cell" colSpan="-1" presence="invisible"/>
      </subform>
    </subform>
    <pageSet/>
  </subform>
</template>
</xdp:xdp>`

func read(t *testing.T, src string) *form.Node {
	t.Helper()
	r := NewReader(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))))
	root, err := r.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return root
}

func TestRead_Structure(t *testing.T) {
	root := read(t, sampleTemplate)

	if root.Kind != form.KindTemplate || root.Name != "sample" {
		t.Fatalf("root = %s %q", root.Kind, root.Name)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children", len(root.Children))
	}
	page := root.Children[0]
	if page.ID != "page1" || page.Layout != form.LayoutTb {
		t.Errorf("page id=%q layout=%q", page.ID, page.Layout)
	}
	if page.W != form.Px(200) || page.H != form.Px(72) {
		t.Errorf("page size = %v x %v", page.W, page.H)
	}
	if page.Font == nil || page.Font.Typeface != "Myriad Pro" || page.Font.Size != 10 || page.Font.Weight != "bold" {
		t.Errorf("page font = %+v", page.Font)
	}
	if len(page.Children) != 2 {
		t.Fatalf("page has %d children", len(page.Children))
	}

	title := page.Children[0]
	if title.Kind != form.KindDraw || title.Parent != page {
		t.Errorf("title kind=%s parent=%v", title.Kind, title.Parent)
	}
	if title.ID == "" {
		t.Error("generated id is empty")
	}
	if title.AnchorType != form.AnchorTypeBottomCenter || title.Rotate != 90 {
		t.Errorf("title anchor=%q rotate=%v", title.AnchorType, title.Rotate)
	}
	if math.Abs(title.MinH-5*72/25.4) > 1e-9 {
		t.Errorf("title minH = %v", title.MinH)
	}
	if title.Text != "Café menu" {
		t.Errorf("title text = %q, want NFC", title.Text)
	}
	if p := title.Para; p == nil || p.HAlign != form.HAlignCenter || p.TextIndent != -4 || p.MarginLeft != 2 {
		t.Errorf("title para = %+v", title.Para)
	}
	if title.InheritedFont() != page.Font {
		t.Error("title does not inherit page font")
	}

	table := page.Children[1]
	if table.Layout != form.LayoutTable || len(table.ColumnWidths) != 3 {
		t.Fatalf("table layout=%q widths=%v", table.Layout, table.ColumnWidths)
	}
	if table.ColumnWidths[0] != 20 || math.Abs(table.ColumnWidths[1]-30*72/25.4) > 1e-9 || !math.IsNaN(table.ColumnWidths[2]) {
		t.Errorf("column widths = %v", table.ColumnWidths)
	}
	cell := table.Children[0].Children[0]
	if cell.ColSpan != -1 || cell.Presence != form.PresenceInvisible || cell.Kind != form.KindField {
		t.Errorf("cell span=%d presence=%q kind=%s", cell.ColSpan, cell.Presence, cell.Kind)
	}
}

func TestRead_Border(t *testing.T) {
	root := read(t, sampleTemplate)
	b := root.Children[0].Children[0].Border
	if b == nil {
		t.Fatal("border is missing")
	}
	if b.Hand != form.HandLeft {
		t.Errorf("hand = %q", b.Hand)
	}
	if b.Widths != [4]float64{2, 1, 1, 1} {
		t.Errorf("widths = %v, want last edge repeated", b.Widths)
	}
	if b.Insets != [4]float64{1, 0, 0, 2} {
		t.Errorf("insets = %v", b.Insets)
	}
	if b.Radius != 3 {
		t.Errorf("radius = %v", b.Radius)
	}
	if b.Edges[0].Color != (form.Color{R: 255}) {
		t.Errorf("edge color = %v", b.Edges[0].Color)
	}
}

func TestRead_Diagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewReader(zap.New(core))

	src := `<template><subform layout="grid" w="wide" colSpan="0"><draw/></subform></template>`
	root, err := r.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	sf := root.Children[0]
	if sf.Layout != form.LayoutPosition || sf.W.IsSet() || sf.ColSpan != 1 {
		t.Errorf("defaults not kept: layout=%q w=%v span=%d", sf.Layout, sf.W, sf.ColSpan)
	}
	if n := logs.Len(); n != 3 {
		t.Errorf("got %d warnings, want 3: %v", n, logs.All())
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not xml", "<<<"},
		{"no template", "<xdp><config/></xdp>"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewReader(nil).Read(strings.NewReader(tt.src)); err == nil {
				t.Error("Read() succeeded")
			}
		})
	}
}

func TestRead_Charset(t *testing.T) {
	// "Привет" in windows-1251
	src := "<?xml version=\"1.0\" encoding=\"windows-1251\"?><template><draw><value><text>\xcf\xf0\xe8\xe2\xe5\xf2</text></value></draw></template>"
	root := read(t, src)
	if got := root.Children[0].Text; got != "Привет" {
		t.Errorf("text = %q", got)
	}
}

func TestRead_DuplicateIDs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewReader(zap.New(core))

	src := `<template><subform id="a"><draw id="a"/><draw id="b"/><field id="b"/></subform></template>`
	root, err := r.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	sf := root.Children[0]
	if sf.ID != "a" || sf.Children[1].ID != "b" {
		t.Errorf("first ids changed: %q, %q", sf.ID, sf.Children[1].ID)
	}
	seen := map[string]bool{}
	root.Walk(func(n *form.Node) bool {
		if seen[n.ID] {
			t.Errorf("id %q repeated", n.ID)
		}
		seen[n.ID] = true
		return true
	})
	if n := logs.FilterMessage("Duplicate node id replaced").Len(); n != 2 {
		t.Errorf("got %d warnings, want 2", n)
	}
}
