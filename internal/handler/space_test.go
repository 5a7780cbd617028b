package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkeasy/parkeasy-api/internal/model"
)

type spaceStoreMock struct {
	listFn func(ctx context.Context) ([]model.ParkingSpace, error)
	getFn  func(ctx context.Context, id uint64) (model.ParkingSpace, error)
}

func (m *spaceStoreMock) List(ctx context.Context) ([]model.ParkingSpace, error) {
	return m.listFn(ctx)
}

func (m *spaceStoreMock) GetByID(ctx context.Context, id uint64) (model.ParkingSpace, error) {
	return m.getFn(ctx, id)
}

func TestSpaceList(t *testing.T) {
	store := &spaceStoreMock{
		listFn: func(context.Context) ([]model.ParkingSpace, error) {
			return []model.ParkingSpace{
				{ID: 1, SpaceNumber: "A-01", Location: "Level 1", Status: "occupied"},
				{ID: 2, SpaceNumber: "A-02", Location: "Level 1", Status: "available"},
			}, nil
		},
	}
	h := NewSpaceHandler(store)

	c, rec := newJSONCtx(http.MethodGet, "/parking-spaces", "", 3)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"occupied"`)
	assert.Contains(t, rec.Body.String(), `"space_number":"A-02"`)
}

func TestSpaceGetByID(t *testing.T) {
	store := &spaceStoreMock{
		getFn: func(_ context.Context, id uint64) (model.ParkingSpace, error) {
			assert.Equal(t, uint64(2), id)
			return model.ParkingSpace{ID: 2, SpaceNumber: "A-02", Status: "available"}, nil
		},
	}
	h := NewSpaceHandler(store)

	c, rec := newJSONCtx(http.MethodGet, "/parking-spaces/2", "", 3)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"space_number":"A-02"`)
}

func TestSpaceGetByIDNotFound(t *testing.T) {
	store := &spaceStoreMock{
		getFn: func(context.Context, uint64) (model.ParkingSpace, error) {
			return model.ParkingSpace{}, sql.ErrNoRows
		},
	}
	h := NewSpaceHandler(store)

	c, rec := newJSONCtx(http.MethodGet, "/parking-spaces/99", "", 3)
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"space_not_found"`)
}
