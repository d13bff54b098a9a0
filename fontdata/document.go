package fontdata

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// document is the root element; its name is not checked.
type document struct {
	Fonts []fontRecord `xml:"font"`
}

type fontRecord struct {
	Type    string     `xml:"type,attr"`
	Inherit string     `xml:"inherit,attr"`
	Hidden  string     `xml:"hidden,attr"`
	Default string     `xml:"default,attr"`
	Aliases []alias    `xml:"aliases>alias"`
	Maps    mapSection `xml:"maps"`
}

type alias struct {
	Name string `xml:"name,attr"`
}

type mapSection struct {
	Global      []mapEntry `xml:"global>map"`
	ToUnicode   []mapEntry `xml:"tounicode>map"`
	FromUnicode []mapEntry `xml:"fromunicode>map"`
}

type mapEntry struct {
	Unicode string `xml:"unicode,attr"`
	Legacy  string `xml:"legacy,attr"`
}

func (rec *fontRecord) isHidden() bool {
	return strings.TrimSpace(rec.Hidden) == "true"
}

// DecodeLegacy decodes the legacy attribute of a map entry to a sequence of
// legacy code units.
//
// An empty value decodes to the empty sequence. A value containing ';' at a
// position other than the start is a list of hexadecimal code units. Any
// other value longer than one character is a single hexadecimal code unit,
// optionally prefixed with "0x". A single character is taken literally.
func DecodeLegacy(value string) ([]rune, error) {
	if value == "" {
		return nil, nil
	}
	if strings.Index(value, ";") > 0 {
		parts := strings.Split(value, ";")
		units := make([]rune, 0, len(parts))
		for _, h := range parts {
			u, err := parseCodeUnit(h)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
		return units, nil
	}
	if utf8.RuneCountInString(value) > 1 {
		u, err := parseCodeUnit(value)
		if err != nil {
			return nil, err
		}
		return []rune{u}, nil
	}
	return []rune(value), nil
}

func parseCodeUnit(h string) (rune, error) {
	h = strings.TrimSpace(h)
	if len(h) > 2 && (h[:2] == "0x" || h[:2] == "0X") {
		h = h[2:]
	}
	n, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}
