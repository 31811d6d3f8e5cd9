package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ostrovskiy/construction-supervision-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestRegisterConstructionObject(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/construction-objects", map[string]any{
		"address": "12 Main St",
		"type":    "residential",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.IDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
}

func TestRegisterConstructionObject_TypeIsOptional(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/construction-objects", map[string]any{
		"address": "3 River Rd",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/construction-objects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var objects []dto.ConstructionObjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &objects))
	require.Len(t, objects, 1)
	require.Equal(t, "3 River Rd", objects[0].Address)
	require.Nil(t, objects[0].Type)
}

func TestRegisterConstructionObject_MissingAddress(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/construction-objects", map[string]any{
		"type": "industrial",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "INVALID_INPUT", response["code"])
}

func TestListConstructionObjects_RoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/construction-objects", map[string]any{
		"address": "12 Main St",
		"type":    "residential",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.IDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.doJSON(t, http.MethodGet, "/api/construction-objects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var objects []dto.ConstructionObjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &objects))

	found := false
	for _, obj := range objects {
		if obj.ID == created.ID {
			found = true
			require.Equal(t, "12 Main St", obj.Address)
			require.NotNil(t, obj.Type)
			require.Equal(t, "residential", *obj.Type)
		}
	}
	require.True(t, found, "registered object missing from list")
}

func TestListConstructionObjects_Pagination(t *testing.T) {
	env := setupTestEnv(t)

	addresses := []string{"1 First St", "2 Second St", "3 Third St"}
	for _, addr := range addresses {
		w := env.doJSON(t, http.MethodPost, "/api/construction-objects", map[string]any{
			"address": addr,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.doJSON(t, http.MethodGet, "/api/construction-objects?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var objects []dto.ConstructionObjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &objects))
	require.Len(t, objects, 2)

	// Without pagination parameters the full set comes back
	w = env.doJSON(t, http.MethodGet, "/api/construction-objects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &objects))
	require.Len(t, objects, 3)
}
