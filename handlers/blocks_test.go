package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"casaherenia/models"
	"casaherenia/services/availability"
)

type fakeBlockStore struct {
	created []models.ManualBlock
}

func (f *fakeBlockStore) Create(ctx context.Context, block models.ManualBlock) (string, error) {
	f.created = append(f.created, block)
	return "blk-1", nil
}

func (f *fakeBlockStore) Delete(ctx context.Context, blockID string) error { return nil }

func (f *fakeBlockStore) All(ctx context.Context) ([]models.ManualBlock, error) { return nil, nil }

func (f *fakeBlockStore) ByUnit(ctx context.Context, unit models.Unit) ([]models.ManualBlock, error) {
	return nil, nil
}

func (f *fakeBlockStore) ForUnits(ctx context.Context, units []models.Unit) ([]models.ManualBlock, error) {
	return nil, nil
}

func newBlockRouter(store *fakeBlockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlockHandler{Service: &availability.ManualBlockService{
		Repo:   store,
		Logger: zap.NewNop(),
	}}
	r.POST("/api/admin/blocks", handler.CreateBlock)
	return r
}

func postBlock(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/blocks", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBlockHandlerAccepts(t *testing.T) {
	store := &fakeBlockStore{}
	r := newBlockRouter(store)

	w := postBlock(r, `{"room_id":"room_1","start_date":"2026-03-10","end_date":"2026-03-12","reason":"painting"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.created, 1)
}

func TestCreateBlockHandlerMalformedDateIsClientError(t *testing.T) {
	store := &fakeBlockStore{}
	r := newBlockRouter(store)

	w := postBlock(r, `{"room_id":"room_1","start_date":"10/03/2026","end_date":"2026-03-12"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}

func TestCreateBlockHandlerInvertedRangeIsClientError(t *testing.T) {
	store := &fakeBlockStore{}
	r := newBlockRouter(store)

	w := postBlock(r, `{"room_id":"room_1","start_date":"2026-03-12","end_date":"2026-03-10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}
