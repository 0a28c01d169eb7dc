package docx

import (
	"errors"
	"strings"
	"testing"
)

func newTestParagraph(t *testing.T, inner string, props *Properties) *Paragraph {
	t.Helper()
	return NewParagraph(parseParagraph(t, inner), props)
}

func TestParagraph_Runs_DocumentOrder(t *testing.T) {
	p := newTestParagraph(t, `
<w:pPr><w:jc w:val="left"/></w:pPr>
<w:r><w:t>one </w:t></w:r>
<w:hyperlink r:id="rId5" xmlns:r="urn:r"><w:r><w:t>two </w:t></w:r><w:r><w:t>three </w:t></w:r></w:hyperlink>
<w:r><w:t>four </w:t></w:r>
<w:ins w:id="1"><w:r><w:t>five </w:t></w:r></w:ins>
<w:del w:id="2"><w:r><w:delText>gone</w:delText></w:r></w:del>
<w:r><w:t>six</w:t></w:r>`, NewProperties(11))

	runs := p.Runs()
	var got []string
	for _, r := range runs {
		got = append(got, r.Text())
	}

	want := []string{"one ", "two ", "three ", "four ", "five ", "six"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Runs() texts = %q, want %q", got, want)
	}
	if p.Text() != "one two three four five six" {
		t.Errorf("Text() = %q", p.Text())
	}
	if p.String() != p.Text() {
		t.Error("String() should equal Text()")
	}
}

func TestParagraph_Alignment(t *testing.T) {
	tests := []struct {
		name                string
		xml                 string
		left, right, center bool
	}{
		{"absent", `<w:r><w:t>x</w:t></w:r>`, true, false, false},
		{"explicit left", `<w:pPr><w:jc w:val="left"/></w:pPr>`, true, false, false},
		{"right", `<w:pPr><w:jc w:val="right"/></w:pPr>`, false, true, false},
		{"center", `<w:pPr><w:jc w:val="center"/></w:pPr>`, false, false, true},
		{"both", `<w:pPr><w:jc w:val="both"/></w:pPr>`, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParagraph(t, tt.xml, nil)

			left, err := p.AlignedLeft()
			if err != nil {
				t.Fatalf("AlignedLeft() error = %v", err)
			}
			right, _ := p.AlignedRight()
			center, _ := p.AlignedCenter()

			if left != tt.left || right != tt.right || center != tt.center {
				t.Errorf("left/right/center = %v/%v/%v, want %v/%v/%v",
					left, right, center, tt.left, tt.right, tt.center)
			}
		})
	}
}

func TestParagraph_FontSize(t *testing.T) {
	p := newTestParagraph(t, `<w:pPr><w:sz w:val="24"/></w:pPr>`, NewProperties(10))
	if size, ok, err := p.FontSize(); err != nil || !ok || size != 12 {
		t.Errorf("FontSize() = %d, %v, %v; want 12, true, nil", size, ok, err)
	}

	props := NewProperties(10)
	p = newTestParagraph(t, `<w:r><w:t>x</w:t></w:r>`, props)
	props.FontSize = 20 // the default was copied at construction
	if size, ok, _ := p.FontSize(); !ok || size != 10 {
		t.Errorf("FontSize() = %d, %v; want copied default 10", size, ok)
	}
}

func TestParagraph_HTML_Plain(t *testing.T) {
	p := newTestParagraph(t, `<w:r><w:t>Hello</w:t></w:r>`, NewProperties(12))

	got, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if want := `<p style="font-size: 12pt">Hello</p>`; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestParagraph_HTML_Styles(t *testing.T) {
	p := newTestParagraph(t, `
<w:pPr><w:jc w:val="center"/><w:rPr><w:sz w:val="28"/><w:color w:val="FF0000"/></w:rPr></w:pPr>
<w:r><w:t>Title</w:t></w:r>`, NewProperties(11))

	got, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	want := `<p style="font-size: 14pt; text-align: center; color: #FF0000">Title</p>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if !strings.Contains(got, "color: #FF0000") {
		t.Error("missing color declaration")
	}
}

func TestParagraph_HTML_NoAlignmentDeclarationWhenAbsent(t *testing.T) {
	p := newTestParagraph(t, `<w:r><w:t>x</w:t></w:r>`, NewProperties(11))
	got, _ := p.HTML()
	if strings.Contains(got, "text-align") || strings.Contains(got, "color") {
		t.Errorf("HTML() = %q, want only font-size", got)
	}
}

func TestParagraph_HTML_FallbackFontSize(t *testing.T) {
	p := newTestParagraph(t, `<w:r><w:t>x</w:t></w:r>`, NewProperties(0))
	got, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(got, "font-size: 11pt") {
		t.Errorf("HTML() = %q, want fallback font-size: 11pt", got)
	}
}

func TestParagraph_HTML_NotAList(t *testing.T) {
	props := NewProperties(11)
	p := newTestParagraph(t, `<w:pPr><w:jc w:val="right"/></w:pPr><w:r><w:t>x</w:t></w:r>`, props)

	got, _ := p.HTML()
	if !strings.HasPrefix(got, "<p ") || strings.Contains(got, "<ol") || strings.Contains(got, "<li") {
		t.Errorf("HTML() = %q, want a bare <p>", got)
	}
	if props.Lists.Len() != 0 {
		t.Error("rendering a plain paragraph touched the counters")
	}
}

func TestParagraph_HTML_ListNumbering(t *testing.T) {
	const item = `<w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>%s</w:t></w:r>`
	props := NewProperties(11)
	a := newTestParagraph(t, strings.Replace(item, "%s", "A", 1), props)
	b := newTestParagraph(t, strings.Replace(item, "%s", "B", 1), props)

	gotA, err := a.HTML()
	if err != nil {
		t.Fatalf("A.HTML() error = %v", err)
	}
	gotB, err := b.HTML()
	if err != nil {
		t.Fatalf("B.HTML() error = %v", err)
	}

	wantA := `<ol style="margin: 2px" start="1"><li style="font-size: 11pt">A</li></ol>`
	wantB := `<ol style="margin: 2px" start="2"><li style="font-size: 11pt">B</li></ol>`
	if gotA != wantA {
		t.Errorf("A.HTML() = %q, want %q", gotA, wantA)
	}
	if gotB != wantB {
		t.Errorf("B.HTML() = %q, want %q", gotB, wantB)
	}
	if got := props.Lists.Value("1"); got != 2 {
		t.Errorf("counter for list 1 = %d, want 2", got)
	}
}

func TestParagraph_HTML_InterleavedLists(t *testing.T) {
	props := NewProperties(11)
	list := func(id string) *Paragraph {
		return newTestParagraph(t, `<w:pPr><w:numPr><w:numId w:val="`+id+`"/></w:numPr></w:pPr>`, props)
	}

	var starts []string
	for _, p := range []*Paragraph{list("1"), list("2"), list("1"), list("2"), list("1")} {
		h, err := p.HTML()
		if err != nil {
			t.Fatal(err)
		}
		i := strings.Index(h, `start="`)
		starts = append(starts, h[i+7:i+8])
	}

	if got := strings.Join(starts, ","); got != "1,1,2,2,3" {
		t.Errorf("start values = %s, want 1,1,2,2,3", got)
	}
}

func TestParagraph_HTML_Idempotent(t *testing.T) {
	p := newTestParagraph(t, `<w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>x</w:t></w:r>`, NewProperties(11))

	first, err := p.HTML()
	if err != nil {
		t.Fatal(err)
	}
	second, _ := p.HTML()
	if first != second {
		t.Errorf("renders differ:\n%s\n%s", first, second)
	}
}

func TestParagraph_HTML_MalformedDoesNotConsumeOrdinal(t *testing.T) {
	props := NewProperties(11)
	p := newTestParagraph(t, `<w:pPr><w:numPr><w:numId w:val="4"/></w:numPr><w:color/></w:pPr>`, props)

	_, err := p.HTML()
	if !errors.Is(err, ErrMalformedMarkup) {
		t.Fatalf("HTML() error = %v, want ErrMalformedMarkup", err)
	}
	if got := props.Lists.Value("4"); got != 0 {
		t.Errorf("counter advanced to %d on a failed render", got)
	}
}

func TestParagraph_HTML_RunFormatting(t *testing.T) {
	p := newTestParagraph(t, `
<w:r><w:t xml:space="preserve">plain </w:t></w:r>
<w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r>
<w:r><w:t xml:space="preserve"> &amp; </w:t></w:r>
<w:r><w:rPr><w:i/></w:rPr><w:t>italic</w:t></w:r>`, NewProperties(11))

	got, err := p.HTML()
	if err != nil {
		t.Fatal(err)
	}
	want := `<p style="font-size: 11pt">plain <strong>bold</strong> &amp; <em>italic</em></p>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestParagraph_SetText_NoRuns(t *testing.T) {
	p := newTestParagraph(t, `<w:pPr><w:jc w:val="center"/></w:pPr>`, nil)

	p.SetText("fresh")

	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("len(Runs()) = %d, want 1", len(runs))
	}
	if runs[0].Text() != "fresh" || p.Text() != "fresh" {
		t.Errorf("texts = %q / %q, want fresh", runs[0].Text(), p.Text())
	}
	if runs[0].Element().Parent() != p.Element() {
		t.Error("new run is not a child of the paragraph")
	}
}

func TestParagraph_SetText_OneRunKeepsFormatting(t *testing.T) {
	p := newTestParagraph(t, `<w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>old</w:t></w:r>`, NewProperties(11))
	before := p.Runs()[0].Element()

	p.SetText("new")

	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("len(Runs()) = %d, want 1", len(runs))
	}
	if runs[0].Element() != before {
		t.Error("SetText replaced the only run instead of updating it")
	}
	if !runs[0].Bold() || !runs[0].Italic() {
		t.Error("run formatting was lost")
	}
	if p.Text() != "new" {
		t.Errorf("Text() = %q, want new", p.Text())
	}

	got, _ := p.HTML()
	if !strings.Contains(got, "<strong><em>new</em></strong>") {
		t.Errorf("HTML() = %q, want formatted new text", got)
	}
}

func TestParagraph_SetText_CollapsesRuns(t *testing.T) {
	p := newTestParagraph(t, `
<w:pPr><w:jc w:val="right"/></w:pPr>
<w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r>
<w:hyperlink><w:r><w:t>b</w:t></w:r></w:hyperlink>
<w:ins><w:r><w:t>c</w:t></w:r></w:ins>`, NewProperties(11))

	p.SetText("collapsed")

	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("len(Runs()) = %d, want 1", len(runs))
	}
	if runs[0].Bold() {
		t.Error("collapsed run kept formatting from a removed run")
	}
	if p.Text() != "collapsed" {
		t.Errorf("Text() = %q, want collapsed", p.Text())
	}
	if n := len(p.Element().FindElements(".//w:r")); n != 1 {
		t.Errorf("%d w:r elements remain in the tree, want 1", n)
	}
	// Paragraph properties are untouched.
	if a, _, _ := p.Alignment(); a != "right" {
		t.Errorf("Alignment() = %q after SetText, want right", a)
	}
}

func TestParagraph_Remove(t *testing.T) {
	doc := parseParagraph(t, `<w:r><w:t>x</w:t></w:r>`)
	body := doc.CreateElement("w:body")
	inner := body.CreateElement("w:p")

	p := NewParagraph(inner, nil)
	p.Remove()

	if len(body.ChildElements()) != 0 {
		t.Error("Remove() left the paragraph in its parent")
	}
	p.Remove() // detached paragraphs are a no-op
}

func TestParagraph_ImplementsContainer(t *testing.T) {
	var c Container = newTestParagraph(t, `<w:r><w:t>x</w:t></w:r>`, nil)
	if c.Properties() == nil || c.Properties().Lists == nil {
		t.Error("nil configuration should be replaced by an empty one")
	}
	if len(c.Runs()) != 1 {
		t.Errorf("len(Runs()) = %d, want 1", len(c.Runs()))
	}
}
