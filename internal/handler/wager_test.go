package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"match-wager/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_CreateWager_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("CreateWager", mock.Anything, "u1", mock.MatchedBy(func(req *model.CreateWagerRequest) bool {
		return req.OpponentID == "u2" && req.Stake == "50"
	})).Return(&model.WagerView{ID: "w1", Status: model.StatusWaiting}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers?user_id=u1",
		model.CreateWagerRequest{OpponentID: "u2", Stake: "50"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.WagerView
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "w1", resp.ID)
	assert.Equal(t, model.StatusWaiting, resp.Status)
}

func TestHandler_CreateWager_MissingUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers",
		model.CreateWagerRequest{OpponentID: "u2", Stake: "50"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestHandler_CreateWager_CooldownConflict(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("CreateWager", mock.Anything, "u1", mock.Anything).Return(nil, model.ErrCooldownActive)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers?user_id=u1",
		model.CreateWagerRequest{OpponentID: "u2", Stake: "50"})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "COOLDOWN_ACTIVE", resp.Code)
}

func TestHandler_CreateWager_ActiveWagerConflict(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("CreateWager", mock.Anything, "u1", mock.Anything).Return(nil, model.ErrActiveWagerExists)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers?user_id=u1",
		model.CreateWagerRequest{OpponentID: "u2", Stake: "50"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AcceptWager_Success(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("AcceptWager", mock.Anything, "w1", "u2").
		Return(&model.WagerView{ID: "w1", Status: model.StatusPlaying, TotalPool: 100}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers/w1/accept?user_id=u2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.WagerView
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.StatusPlaying, resp.Status)
	assert.Equal(t, int64(100), resp.TotalPool)
}

func TestHandler_AcceptWager_WrongOpponent(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("AcceptWager", mock.Anything, "w1", "u3").Return(nil, model.ErrWrongOpponent)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers/w1/accept?user_id=u3", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "WRONG_OPPONENT", resp.Code)
}

func TestHandler_AcceptWager_ProviderDown(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("AcceptWager", mock.Anything, "w1", "u2").Return(nil, model.ErrProviderUnavailable)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers/w1/accept?user_id=u2", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "PROVIDER_UNAVAILABLE", resp.Code)
	assert.NotEmpty(t, resp.Details)
}

func TestHandler_ListWagers_StatusFilter(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("ListWagers", mock.Anything, "playing").
		Return([]*model.WagerView{{ID: "w1", Status: model.StatusPlaying}}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/wagers?status=playing", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.WagerListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Total)
}

func TestHandler_ListWagers_InvalidStatus(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("ListWagers", mock.Anything, "bogus").Return(nil, model.ErrInvalidStatus)

	w := doJSON(router, http.MethodGet, "/api/v1/wagers?status=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetWager_NotFound(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("GetWager", mock.Anything, "missing").Return(nil, model.ErrWagerNotFound)

	w := doJSON(router, http.MethodGet, "/api/v1/wagers/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "WAGER_NOT_FOUND", resp.Code)
}

func TestHandler_TriggerEvaluation(t *testing.T) {
	router, m := newTestRouter(t)

	m.wager.On("EvaluateAll", mock.Anything).
		Return([]*model.WagerView{{ID: "w1", Status: model.StatusFinished}}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/wagers/check", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.EvaluationResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Resolved, 1)
}
