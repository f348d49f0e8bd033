package xml

import (
	"encoding/xml"
	"strings"
)

// namespacePrefixes maps namespace URIs back to the prefixes Word uses.
// encoding/xml resolves prefixes to URIs while decoding, so anything we
// re-emit has to be translated through this table.
var namespacePrefixes = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":               "w16cex",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":       "w16sdtdh",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"http://schemas.microsoft.com/office/drawing/2014/chartex":               "cx",
	"http://schemas.microsoft.com/office/drawing/2016/ink":                   "aink",
	"http://schemas.microsoft.com/office/drawing/2017/model3d":               "am3d",
}

// prefixedName renders an xml.Name the way it appeared in the source
// document. A Space that is not a known URI is assumed to already be a
// prefix (encoding/xml leaves unbound prefixes untranslated).
func prefixedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := namespacePrefixes[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	return name.Space + ":" + name.Local
}

// attrName renders an attribute name, handling xmlns declarations which
// encoding/xml reports with Space "xmlns".
func attrName(name xml.Name) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	return prefixedName(name)
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
