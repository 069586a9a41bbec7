package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paintconnect/storefront/internal/cart"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "spaces and dashes stripped", phone: "077-341 8669", want: "+0773418669"},
		{name: "existing plus kept", phone: "+94 77 341-8669", want: "+94773418669"},
		{name: "parentheses stripped", phone: "(077) 341 8669", want: "+0773418669"},
		{name: "clean number gets plus", phone: "94773418669", want: "+94773418669"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestProductLink_Validation(t *testing.T) {
	t.Parallel()

	base := ProductInquiry{PhoneNumber: "0773418669", ProductName: "Marine Blue Gloss"}

	t.Run("name at limit succeeds", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.ProductName = strings.Repeat("a", 200)
		_, err := ProductLink(inq)
		require.NoError(t, err)
	})

	t.Run("name over limit rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.ProductName = strings.Repeat("a", 201)
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.ProductName = "   "
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.PhoneNumber = ""
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("phone over limit rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.PhoneNumber = strings.Repeat("9", 21)
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("long code rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.ProductCode = strings.Repeat("x", 101)
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("long color rejected", func(t *testing.T) {
		t.Parallel()
		inq := base
		inq.Color = strings.Repeat("x", 101)
		_, err := ProductLink(inq)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestProductLink_MessageContent(t *testing.T) {
	t.Parallel()

	link, err := ProductLink(ProductInquiry{
		PhoneNumber: "077-341 8669",
		ProductName: "Marine Blue Gloss",
		ProductCode: "MB-17",
		Color:       "Blue",
		ProductURL:  "https://shop.example/products/17",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "https://wa.me/+0773418669?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")

	assert.Contains(t, msg, "*Marine Blue Gloss*")
	assert.Contains(t, msg, "Product Code: MB-17")
	assert.Contains(t, msg, "Color: Blue")
	assert.Contains(t, msg, "Product Link: https://shop.example/products/17")
	assert.Contains(t, msg, "Could you please provide more information?")
}

func TestProductLink_OptionalLinesOmitted(t *testing.T) {
	t.Parallel()

	link, err := ProductLink(ProductInquiry{
		PhoneNumber: "0773418669",
		ProductName: "Marine Blue Gloss",
	})
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")

	assert.NotContains(t, msg, "Product Code:")
	assert.NotContains(t, msg, "Color:")
	assert.NotContains(t, msg, "Product Link:")
}

func TestCartMessage_NumberedListAndTotals(t *testing.T) {
	t.Parallel()

	lines := []cart.Line{
		{ProductID: uuid.New(), Name: "Marine Blue Gloss", Code: "MB-17", UnitPrice: 500, Quantity: 2},
		{ProductID: uuid.New(), Name: "Custom Tint", UnitPrice: 0, Quantity: 1},
	}

	msg := CartMessage(lines)

	assert.Contains(t, msg, "1. *Marine Blue Gloss*")
	assert.Contains(t, msg, "   Code: MB-17")
	assert.Contains(t, msg, "   Quantity: 2")
	assert.Contains(t, msg, "   Price: Rs. 500.00")
	assert.Contains(t, msg, "2. *Custom Tint*")
	assert.Contains(t, msg, "*Total Items: 3*")
	assert.Contains(t, msg, "*Total Amount: Rs. 1000.00*")
	assert.Contains(t, msg, "confirm availability?")

	// The inquiry line carries no price line.
	tintSection := msg[strings.Index(msg, "2. *Custom Tint*"):]
	assert.NotContains(t, tintSection, "Price:")
}

func TestCartMessage_NoMonetaryTotalWhenUnpriced(t *testing.T) {
	t.Parallel()

	lines := []cart.Line{
		{ProductID: uuid.New(), Name: "Custom Tint", UnitPrice: 0, Quantity: 2},
	}

	msg := CartMessage(lines)
	assert.Contains(t, msg, "*Total Items: 2*")
	assert.NotContains(t, msg, "Total Amount")
}

func TestCartLink(t *testing.T) {
	t.Parallel()

	lines := []cart.Line{
		{ProductID: uuid.New(), Name: "Marine Blue Gloss", UnitPrice: 500, Quantity: 1},
	}

	link, err := CartLink("077 341 8669", lines)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/+0773418669?text="), link)

	_, err = CartLink("", lines)
	assert.ErrorIs(t, err, ErrValidation)
}
