package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedFile(t *testing.T) {
	doc, err := parseSeedFile([]byte(`
servings: 3
purchases:
  - name: 鶏肉
    unit: g
    quantity: 300
    totalPrice: 600
  - name: 牛乳
    unit: ml
    quantity: "1000"
    totalPrice: 248.5
`))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Servings)

	reqs, err := doc.requests()
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "鶏肉", reqs[0].Name)
	assert.Equal(t, "300", reqs[0].Quantity.String())
	assert.Equal(t, "248.5", reqs[1].TotalPrice.String())
}

func TestParseSeedFile_Errors(t *testing.T) {
	_, err := parseSeedFile([]byte("purchases: [}"))
	assert.Error(t, err)

	_, err = parseSeedFile([]byte("purchases: []"))
	assert.Error(t, err)

	doc, err := parseSeedFile([]byte("purchases:\n  - {name: x, unit: g, quantity: abc, totalPrice: 1}\n"))
	require.NoError(t, err)
	_, err = doc.requests()
	assert.ErrorContains(t, err, "quantity")
}
