package xml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-sections/pkg/sections/units"
)

func parseSectPr(t *testing.T, markup string) *SectPr {
	t.Helper()
	var sectPr SectPr
	if err := xml.Unmarshal([]byte(markup), &sectPr); err != nil {
		t.Fatalf("failed to parse sectPr: %v", err)
	}
	return &sectPr
}

func marshalSectPr(s *SectPr) string {
	var b strings.Builder
	s.writeXML(&b)
	return b.String()
}

func TestSectPrGeometryParsing(t *testing.T) {
	sectPr := parseSectPr(t, `<w:sectPr>
		<w:pgSz w:w="11906" w:h="16838" w:orient="landscape"/>
		<w:pgMar w:top="1440" w:right="1800" w:bottom="-720" w:left="1800" w:header="708" w:footer="708" w:gutter="0"/>
	</w:sectPr>`)

	tests := []struct {
		name string
		get  func() (units.Length, bool)
		want int64
	}{
		{"page width", sectPr.PageWidth, 11906},
		{"page height", sectPr.PageHeight, 16838},
		{"top margin", sectPr.TopMargin, 1440},
		{"right margin", sectPr.RightMargin, 1800},
		{"bottom margin", sectPr.BottomMargin, -720},
		{"left margin", sectPr.LeftMargin, 1800},
		{"header distance", sectPr.HeaderDistance, 708},
		{"footer distance", sectPr.FooterDistance, 708},
		{"gutter", sectPr.Gutter, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.get()
			if !ok {
				t.Fatalf("%s reported absent", tt.name)
			}
			if got.Twips() != tt.want {
				t.Errorf("%s = %d twips, want %d", tt.name, got.Twips(), tt.want)
			}
		})
	}

	if got := sectPr.Orientation(); got != OrientationLandscape {
		t.Errorf("Orientation() = %q, want landscape", got)
	}
}

func TestSectPrDefaults(t *testing.T) {
	sectPr := parseSectPr(t, `<w:sectPr></w:sectPr>`)

	if _, ok := sectPr.PageWidth(); ok {
		t.Error("PageWidth present on empty sectPr")
	}
	if _, ok := sectPr.TopMargin(); ok {
		t.Error("TopMargin present on empty sectPr")
	}
	if got := sectPr.Orientation(); got != OrientationPortrait {
		t.Errorf("Orientation() = %q, want portrait default", got)
	}
	if got := sectPr.StartType(); got != SectionStartNextPage {
		t.Errorf("StartType() = %q, want nextPage default", got)
	}
}

func TestSectPrBadTwipsValue(t *testing.T) {
	var sectPr SectPr
	err := xml.Unmarshal([]byte(`<w:sectPr><w:pgSz w:w="wide"/></w:sectPr>`), &sectPr)
	if err == nil {
		t.Fatal("expected error for non-numeric page width")
	}
}

func TestSectPrSettersCreateChildren(t *testing.T) {
	sectPr := &SectPr{}

	sectPr.SetTopMargin(units.Inches(1))
	sectPr.SetPageWidth(units.Twips(12240))
	sectPr.SetOrientation(OrientationLandscape)
	sectPr.SetStartType(SectionStartEvenPage)

	got := marshalSectPr(sectPr)
	for _, want := range []string{
		`<w:type w:val="evenPage"/>`,
		`w:w="12240"`,
		`w:orient="landscape"`,
		`w:top="1440"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled sectPr missing %s:\n%s", want, got)
		}
	}
}

func TestSectPrHeaderReferences(t *testing.T) {
	sectPr := parseSectPr(t, `<w:sectPr>
		<w:headerReference w:type="default" r:id="rId4"/>
		<w:headerReference w:type="even" r:id="rId5"/>
	</w:sectPr>`)

	ref := sectPr.GetHeaderReference(HdrFtrDefault)
	if ref == nil || ref.ID != "rId4" {
		t.Fatalf("GetHeaderReference(default) = %+v, want rId4", ref)
	}
	if ref := sectPr.GetHeaderReference(HdrFtrFirst); ref != nil {
		t.Errorf("GetHeaderReference(first) = %+v, want nil", ref)
	}

	// Replace keeps a single reference per type
	sectPr.AddHeaderReference(HdrFtrDefault, "rId9")
	if got := sectPr.GetHeaderReference(HdrFtrDefault).ID; got != "rId9" {
		t.Errorf("reference after replace = %s, want rId9", got)
	}
	if len(sectPr.HeaderReferences) != 2 {
		t.Errorf("got %d header references, want 2", len(sectPr.HeaderReferences))
	}

	if removed := sectPr.RemoveHeaderReference(HdrFtrDefault); removed != "rId9" {
		t.Errorf("RemoveHeaderReference() = %s, want rId9", removed)
	}
	if removed := sectPr.RemoveHeaderReference(HdrFtrDefault); removed != "" {
		t.Errorf("second RemoveHeaderReference() = %s, want empty", removed)
	}
	// The even reference is untouched
	if ref := sectPr.GetHeaderReference(HdrFtrEven); ref == nil || ref.ID != "rId5" {
		t.Errorf("even reference disturbed: %+v", ref)
	}
}

func TestSectPrFooterReferences(t *testing.T) {
	sectPr := parseSectPr(t, `<w:sectPr><w:footerReference w:type="default" r:id="rId6"/></w:sectPr>`)

	if ref := sectPr.GetFooterReference(HdrFtrDefault); ref == nil || ref.ID != "rId6" {
		t.Fatalf("GetFooterReference(default) = %+v, want rId6", ref)
	}
	if removed := sectPr.RemoveFooterReference(HdrFtrDefault); removed != "rId6" {
		t.Errorf("RemoveFooterReference() = %s, want rId6", removed)
	}
	sectPr.AddFooterReference(HdrFtrDefault, "rId12")
	if got := marshalSectPr(sectPr); !strings.Contains(got, `<w:footerReference w:type="default" r:id="rId12"/>`) {
		t.Errorf("marshaled sectPr missing footer reference:\n%s", got)
	}
}

func TestSectPrPreservesUnknownChildren(t *testing.T) {
	sectPr := parseSectPr(t, `<w:sectPr>
		<w:pgSz w:w="11906" w:h="16838"/>
		<w:cols w:space="708"/>
		<w:docGrid w:linePitch="360"/>
	</w:sectPr>`)

	if len(sectPr.Others) != 2 {
		t.Fatalf("got %d preserved children, want 2", len(sectPr.Others))
	}

	got := marshalSectPr(sectPr)
	for _, want := range []string{`<w:cols w:space="708">`, `<w:docGrid w:linePitch="360">`} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled sectPr missing preserved child %s:\n%s", want, got)
		}
	}
}

func TestSectPrRoundTrip(t *testing.T) {
	original := `<w:sectPr><w:headerReference w:type="default" r:id="rId4"/><w:type w:val="continuous"/><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1800" w:bottom="1440" w:left="1800" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`
	first := parseSectPr(t, original)
	second := parseSectPr(t, marshalSectPr(first))

	if marshalSectPr(first) != marshalSectPr(second) {
		t.Error("sectPr serialization is not stable across a round trip")
	}
	if w1, _ := first.PageWidth(); w1.Twips() != 12240 {
		t.Errorf("first parse page width = %d", w1.Twips())
	}
	if w2, _ := second.PageWidth(); w2.Twips() != 12240 {
		t.Errorf("second parse page width = %d", w2.Twips())
	}
}
