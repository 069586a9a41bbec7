// Package whatsapp formats order-handoff messages and wa.me deep links. It is
// pure: building a link never talks to the network, opening it is the
// caller's side effect.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/paintconnect/storefront/internal/cart"
)

var ErrValidation = errors.New("invalid parameters for WhatsApp link")

const (
	maxNameLen  = 200
	maxPhoneLen = 20
	maxFieldLen = 100
)

// ProductInquiry describes a single-product enquiry.
type ProductInquiry struct {
	PhoneNumber string
	ProductName string
	ProductCode string
	Color       string
	ProductURL  string
}

// validate enforces hard limits instead of clamping: this text goes out to a
// third party and must not silently truncate identifiers.
func (p ProductInquiry) validate() error {
	name := strings.TrimSpace(p.ProductName)
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("product name must be 1..%d characters: %w", maxNameLen, ErrValidation)
	}
	phone := strings.TrimSpace(p.PhoneNumber)
	if phone == "" || len(phone) > maxPhoneLen {
		return fmt.Errorf("phone number must be 1..%d characters: %w", maxPhoneLen, ErrValidation)
	}
	if len(strings.TrimSpace(p.ProductCode)) > maxFieldLen {
		return fmt.Errorf("product code too long: %w", ErrValidation)
	}
	if len(strings.TrimSpace(p.Color)) > maxFieldLen {
		return fmt.Errorf("color too long: %w", ErrValidation)
	}
	return nil
}

// ProductLink builds the wa.me link for a single-product enquiry.
func ProductLink(inq ProductInquiry) (string, error) {
	if err := inq.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Hi, I'm interested in this product from your website:\n\n")
	fmt.Fprintf(&b, "*%s*\n", strings.TrimSpace(inq.ProductName))

	if code := strings.TrimSpace(inq.ProductCode); code != "" {
		fmt.Fprintf(&b, "Product Code: %s\n", code)
	}
	if color := strings.TrimSpace(inq.Color); color != "" {
		fmt.Fprintf(&b, "Color: %s\n", color)
	}
	if inq.ProductURL != "" {
		fmt.Fprintf(&b, "\nProduct Link: %s\n", inq.ProductURL)
	}
	b.WriteString("\nCould you please provide more information?")

	return Link(inq.PhoneNumber, b.String()), nil
}

// CartMessage renders the cart as a numbered order message. Price lines are
// omitted for inquiry-only items and the monetary total only appears when at
// least one line is priced.
func CartMessage(lines []cart.Line) string {
	var b strings.Builder
	b.WriteString("Hi, I'm interested in the following products from your website:\n\n")

	var totalItems uint
	var totalAmount float64
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, line.Name)
		if line.Code != "" {
			fmt.Fprintf(&b, "   Code: %s\n", line.Code)
		}
		fmt.Fprintf(&b, "   Quantity: %d\n", line.Quantity)
		if line.UnitPrice > 0 {
			fmt.Fprintf(&b, "   Price: Rs. %.2f\n", line.UnitPrice)
			totalAmount += line.UnitPrice * float64(line.Quantity)
		}
		b.WriteString("\n")
		totalItems += line.Quantity
	}

	fmt.Fprintf(&b, "*Total Items: %d*\n", totalItems)
	if totalAmount > 0 {
		fmt.Fprintf(&b, "*Total Amount: Rs. %.2f*\n\n", totalAmount)
	} else {
		b.WriteString("\n")
	}
	b.WriteString("Could you please provide more information and confirm availability?")

	return b.String()
}

// CartLink builds the wa.me link for a whole-cart enquiry.
func CartLink(phoneNumber string, lines []cart.Line) (string, error) {
	phone := strings.TrimSpace(phoneNumber)
	if phone == "" || len(phone) > maxPhoneLen {
		return "", fmt.Errorf("phone number must be 1..%d characters: %w", maxPhoneLen, ErrValidation)
	}
	return Link(phoneNumber, CartMessage(lines)), nil
}

// NormalizePhone strips spaces, dashes and parentheses and guarantees a
// leading +.
func NormalizePhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	return "+" + cleaned
}

// Link combines a normalized phone number with a percent-encoded message body.
func Link(phone, message string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(message)
}
