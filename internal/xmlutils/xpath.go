// Package xmlutils wraps the XML plumbing shared by the structured codec and
// format detection.
package xmlutils

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

// NewDecoder returns an XML decoder that also understands documents declared
// in a non-UTF-8 encoding such as ISO-8859-1 or windows-1252.
func NewDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// LoadXML parses a whole document into an xmlpath tree.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.ParseDecoder(NewDecoder(r))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractFromXML returns the string value of every node matching xpath.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values, nil
}

// Exists reports whether xpath matches at least one node.
func Exists(root *xmlpath.Node, xpath string) bool {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false
	}
	return path.Exists(root)
}

// GetOrEmpty returns slice[index], or "" when index is out of range.
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}
