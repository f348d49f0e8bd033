package sections

import (
	"testing"

	sxml "github.com/benjaminschreck/go-sections/pkg/sections/xml"
	"github.com/benjaminschreck/go-sections/pkg/sections/units"
)

func threeSectionDoc(t *testing.T) *Document {
	t.Helper()
	return openTestDocument(t, testDocXML(
		`<w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1800" w:bottom="1440" w:left="1800" w:header="720" w:footer="720" w:gutter="0"/>`,
		`<w:type w:val="continuous"/><w:pgSz w:w="12240" w:h="15840" w:orient="landscape"/>`,
		`<w:pgSz w:w="12240" w:h="15840"/>`,
	), "")
}

func TestSectionsCount(t *testing.T) {
	tests := []struct {
		name string
		doc  func(t *testing.T) *Document
		want int
	}{
		{
			name: "three sections",
			doc:  threeSectionDoc,
			want: 3,
		},
		{
			name: "single section",
			doc: func(t *testing.T) *Document {
				return openTestDocument(t, testDocXML(`<w:pgSz w:w="12240" w:h="15840"/>`), "")
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs := tt.doc(t).Sections()
			if got := secs.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSectionsAt(t *testing.T) {
	secs := threeSectionDoc(t).Sections()

	sec, err := secs.At(1)
	if err != nil {
		t.Fatalf("At(1) error = %v", err)
	}
	if got := sec.StartType(); got != sxml.SectionStartContinuous {
		t.Errorf("StartType() = %q, want %q", got, sxml.SectionStartContinuous)
	}
}

func TestSectionsAtOutOfRange(t *testing.T) {
	secs := threeSectionDoc(t).Sections()

	tests := []struct {
		name  string
		index int
	}{
		{"index equal to count", 3},
		{"index beyond count", 17},
		{"negative index", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := secs.At(tt.index)
			if err == nil {
				t.Fatalf("At(%d) expected error, got nil", tt.index)
			}
			if !IsOutOfRangeError(err) {
				t.Errorf("At(%d) error = %v, want OutOfRangeError", tt.index, err)
			}
		})
	}
}

func TestSectionsSlice(t *testing.T) {
	secs := threeSectionDoc(t).Sections()

	got, err := secs.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice(1, 3) error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Slice(1, 3) returned %d sections, want 2", len(got))
	}
	if got[0].StartType() != sxml.SectionStartContinuous {
		t.Errorf("slice[0] is not the second section")
	}

	if _, err := secs.Slice(0, 4); err == nil || !IsOutOfRangeError(err) {
		t.Errorf("Slice(0, 4) error = %v, want OutOfRangeError", err)
	}
	if _, err := secs.Slice(2, 1); err == nil || !IsOutOfRangeError(err) {
		t.Errorf("Slice(2, 1) error = %v, want OutOfRangeError", err)
	}
}

func TestSectionsAllMatchesIndexedAccess(t *testing.T) {
	secs := threeSectionDoc(t).Sections()

	i := 0
	for sec := range secs.All() {
		indexed, err := secs.At(i)
		if err != nil {
			t.Fatalf("At(%d) error = %v", i, err)
		}
		if sec.sectPr != indexed.sectPr {
			t.Errorf("iteration element %d wraps a different sectPr than At(%d)", i, i)
		}
		i++
	}
	if i != secs.Count() {
		t.Errorf("iterated %d sections, want %d", i, secs.Count())
	}

	// Restartable: a second pass sees the same sequence
	j := 0
	for range secs.All() {
		j++
	}
	if j != i {
		t.Errorf("second iteration saw %d sections, want %d", j, i)
	}
}

func TestSectionGeometryAccessors(t *testing.T) {
	secs := threeSectionDoc(t).Sections()
	sec, err := secs.At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}

	tests := []struct {
		name string
		get  func() (units.Length, bool)
		want int64 // twips
	}{
		{"top margin", sec.TopMargin, 1440},
		{"right margin", sec.RightMargin, 1800},
		{"bottom margin", sec.BottomMargin, 1440},
		{"left margin", sec.LeftMargin, 1800},
		{"header distance", sec.HeaderDistance, 720},
		{"footer distance", sec.FooterDistance, 720},
		{"gutter", sec.Gutter, 0},
		{"page width", sec.PageWidth, 11906},
		{"page height", sec.PageHeight, 16838},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.get()
			if !ok {
				t.Fatalf("%s reported as absent", tt.name)
			}
			if got.Twips() != tt.want {
				t.Errorf("%s = %d twips, want %d", tt.name, got.Twips(), tt.want)
			}
		})
	}
}

func TestSectionGeometryAbsent(t *testing.T) {
	doc := openTestDocument(t, testDocXML(`<w:pgSz w:w="12240" w:h="15840"/>`), "")
	sec, err := doc.Sections().At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}

	if _, ok := sec.TopMargin(); ok {
		t.Error("TopMargin reported as present on a sectPr without pgMar")
	}

	// Defaults for the enum accessors
	if got := sec.Orientation(); got != sxml.OrientationPortrait {
		t.Errorf("Orientation() = %q, want portrait default", got)
	}
	if got := sec.StartType(); got != sxml.SectionStartNextPage {
		t.Errorf("StartType() = %q, want nextPage default", got)
	}
}

func TestSectionGeometrySetters(t *testing.T) {
	doc := openTestDocument(t, testDocXML(`<w:pgSz w:w="12240" w:h="15840"/>`), "")
	sec, err := doc.Sections().At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}

	sec.SetTopMargin(units.Inches(1))
	if got, ok := sec.TopMargin(); !ok || got.Twips() != 1440 {
		t.Errorf("TopMargin after set = (%v, %v), want 1440 twips", got.Twips(), ok)
	}

	sec.SetOrientation(sxml.OrientationLandscape)
	if got := sec.Orientation(); got != sxml.OrientationLandscape {
		t.Errorf("Orientation after set = %q, want landscape", got)
	}

	sec.SetStartType(sxml.SectionStartOddPage)
	if got := sec.StartType(); got != sxml.SectionStartOddPage {
		t.Errorf("StartType after set = %q, want oddPage", got)
	}

	// The same element is visible through a fresh Section value
	again, err := doc.Sections().At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}
	if got, ok := again.TopMargin(); !ok || got.Twips() != 1440 {
		t.Errorf("TopMargin through fresh section = (%v, %v), want 1440 twips", got.Twips(), ok)
	}
}

func TestSectionHeaderFooterMemoized(t *testing.T) {
	sec, err := threeSectionDoc(t).Sections().At(0)
	if err != nil {
		t.Fatalf("At(0) error = %v", err)
	}

	if sec.Header() != sec.Header() {
		t.Error("Header() is not memoized per Section value")
	}
	if sec.Footer() != sec.Footer() {
		t.Error("Footer() is not memoized per Section value")
	}
}
