package xml

// Orientation is the page orientation of a section, the w:orient
// attribute of w:pgSz. A missing attribute means portrait.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// SectionStart is the break behavior that begins a section, the w:val
// attribute of w:type. A missing element means a new-page break.
type SectionStart string

const (
	SectionStartNextPage   SectionStart = "nextPage"
	SectionStartContinuous SectionStart = "continuous"
	SectionStartNewColumn  SectionStart = "nextColumn"
	SectionStartEvenPage   SectionStart = "evenPage"
	SectionStartOddPage    SectionStart = "oddPage"
)

// HdrFtrType selects which header/footer role a w:headerReference or
// w:footerReference names. The section layer only ever uses HdrFtrDefault;
// even and first-page variants exist in the format but are not managed
// by this library.
type HdrFtrType string

const (
	HdrFtrDefault HdrFtrType = "default"
	HdrFtrEven    HdrFtrType = "even"
	HdrFtrFirst   HdrFtrType = "first"
)
