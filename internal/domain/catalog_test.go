package domain

import (
	"encoding/json"
	"testing"

	"github.com/nordicmagic/backend/internal/model"
	"github.com/nordicmagic/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_catalogDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewCatalogDomain()

	resp, err := domain.GetList(ctx, &model.GetCatalogRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 11)

	// The response is a bare array with numeric or textual prices.
	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, "Enlace del destino", decoded[0]["name"])
	require.EqualValues(t, 25, decoded[0]["price"])
	require.Equal(t, "spell", decoded[0]["type"])
	require.Equal(t, "15-40", decoded[10]["price"])
	require.Equal(t, "reading", decoded[10]["type"])
}
