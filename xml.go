package tscodec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Element is the XML surface descriptors build into and analyze from.
// Attribute getters return false for a missing or malformed value so that
// AnalyzeXML implementations can fail cleanly.
type Element interface {
	Name() string
	SetIntAttribute(name string, value int64, hexa bool)
	IntAttribute(name string) (int64, bool)
	SetBoolAttribute(name string, value bool)
	BoolAttribute(name string) (bool, bool)
	SetStringAttribute(name, value string)
	StringAttribute(name string) (string, bool)
	AddHexaTextChild(name string, data []byte)
	HexaTextChild(name string) ([]byte, bool)
	AddChild(name string) Element
	Children(name string) []Element
}

// WrapElement adapts an etree element to the Element interface.
func WrapElement(e *etree.Element) Element { return etreeElement{e: e} }

type etreeElement struct {
	e *etree.Element
}

func (x etreeElement) Name() string { return x.e.Tag }

func (x etreeElement) SetIntAttribute(name string, value int64, hexa bool) {
	if hexa {
		x.e.CreateAttr(name, fmt.Sprintf("%#x", value))
	} else {
		x.e.CreateAttr(name, strconv.FormatInt(value, 10))
	}
}

func (x etreeElement) IntAttribute(name string) (int64, bool) {
	a := x.e.SelectAttr(name)
	if a == nil {
		return 0, false
	}
	// base 0 accepts both decimal and 0x forms
	v, err := strconv.ParseInt(a.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (x etreeElement) SetBoolAttribute(name string, value bool) {
	x.e.CreateAttr(name, strconv.FormatBool(value))
}

func (x etreeElement) BoolAttribute(name string) (bool, bool) {
	a := x.e.SelectAttr(name)
	if a == nil {
		return false, false
	}
	v, err := strconv.ParseBool(a.Value)
	if err != nil {
		return false, false
	}
	return v, true
}

func (x etreeElement) SetStringAttribute(name, value string) {
	x.e.CreateAttr(name, value)
}

func (x etreeElement) StringAttribute(name string) (string, bool) {
	a := x.e.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (x etreeElement) AddHexaTextChild(name string, data []byte) {
	c := x.e.CreateElement(name)
	c.SetText(hex.EncodeToString(data))
}

func (x etreeElement) HexaTextChild(name string) ([]byte, bool) {
	c := x.e.SelectElement(name)
	if c == nil {
		return nil, false
	}
	s := strings.Join(strings.Fields(c.Text()), "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return data, true
}

func (x etreeElement) AddChild(name string) Element {
	return etreeElement{e: x.e.CreateElement(name)}
}

func (x etreeElement) Children(name string) (o []Element) {
	for _, c := range x.e.SelectElements(name) {
		o = append(o, etreeElement{e: c})
	}
	return
}
