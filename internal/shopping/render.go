package shopping

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

// Format selects the output format of a shopping list document.
type Format string

const (
	FormatTxt Format = "txt"
	FormatXML Format = "xml"
)

// ParseFormat validates a format name from configuration or user input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTxt:
		return FormatTxt, nil
	case FormatXML:
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected txt or xml)", s)
	}
}

// Document is a rendered shopping list ready to be sent as a file.
type Document struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Meta carries the user-facing header fields of a rendered document.
type Meta struct {
	UserName string
	Date     time.Time
}

type xmlIngredient struct {
	Name            string `xml:"Name"`
	Amount          string `xml:"Amount"`
	MeasurementUnit string `xml:"MeasurementUnit"`
}

type xmlUser struct {
	Name string `xml:"Name"`
	Date string `xml:"Date"`
}

type xmlCart struct {
	XMLName     xml.Name        `xml:"ShoppingCart"`
	User        xmlUser         `xml:"User"`
	Ingredients []xmlIngredient `xml:"Ingredients>Ingredient"`
}

// Render produces a document from aggregated lines. An empty line list yields
// a valid document with no entries, never an error.
func Render(lines []Line, meta Meta, format Format) (*Document, error) {
	switch format {
	case FormatTxt:
		return renderTxt(lines, meta), nil
	case FormatXML:
		return renderXML(lines, meta)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

func renderTxt(lines []Line, meta Meta) *Document {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Список покупок для %s\n", meta.UserName)
	fmt.Fprintf(&buf, "Дата: %s\n\n", meta.Date.Format("02.01.2006"))
	for _, line := range lines {
		fmt.Fprintf(&buf, "%s (%s) — %s\n", line.Name, line.MeasurementUnit, line.Amount)
	}
	return &Document{
		Data:        buf.Bytes(),
		Filename:    "shopping_list.txt",
		ContentType: "text/plain; charset=utf-8",
	}
}

func renderXML(lines []Line, meta Meta) (*Document, error) {
	cart := xmlCart{
		User: xmlUser{
			Name: meta.UserName,
			Date: meta.Date.Format("02.01.2006"),
		},
	}
	for _, line := range lines {
		cart.Ingredients = append(cart.Ingredients, xmlIngredient{
			Name:            line.Name,
			Amount:          line.Amount.String(),
			MeasurementUnit: line.MeasurementUnit,
		})
	}

	body, err := xml.MarshalIndent(cart, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shopping cart XML: %w", err)
	}
	return &Document{
		Data:        append([]byte(xml.Header), body...),
		Filename:    "shopping_cart.xml",
		ContentType: "application/xml; charset=utf-8",
	}, nil
}
