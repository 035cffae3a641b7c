package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalNumber(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"product_id":7,"name":"Widget","price":9.99,"description":null,"stock_quantity":3}`), &p)
	require.NoError(t, err)
	assert.Equal(t, ID("7"), p.ID)
	assert.Nil(t, p.Description)
}

func TestIDUnmarshalString(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"product_id":"42","name":"Gadget","price":1,"description":"x","stock_quantity":0}`), &p)
	require.NoError(t, err)
	assert.Equal(t, ID("42"), p.ID)
	require.NotNil(t, p.Description)
	assert.Equal(t, "x", *p.Description)
}

func TestIDUnmarshalNull(t *testing.T) {
	var id ID
	err := json.Unmarshal([]byte(`null`), &id)
	assert.Error(t, err)
}

func TestIDMarshal(t *testing.T) {
	b, err := json.Marshal(ID("7"))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(b))
}
