package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*Api, context.CancelFunc) {
	gin.SetMode(gin.TestMode)
	sched := anim.NewScheduler(0, 0, nil)
	s := strip.New(10)
	c := stream.NewController()
	require.NoError(t, c.Add("slow", anim.NewAnimation(sched, s, anim.Attributes{
		strip.Offset: anim.By(anim.Scalar(5)),
	}, anim.Seconds(60), nil)))
	require.NoError(t, c.Add("dim", anim.NewAnimation(sched, s, anim.Attributes{
		strip.Brightness: anim.To(anim.Scalar(0.25)),
	}, anim.Seconds(60), nil)))

	ctx, cancel := context.WithCancel(context.Background())
	go sched.Run(ctx)
	return NewApi(sched, c, s), cancel
}

func call(t *testing.T, a *Api, method, path string) (int, reply) {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	var r reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return w.Code, r
}

func TestListAnimations(t *testing.T) {
	a, cancel := setup(t)
	defer cancel()

	code, r := call(t, a, http.MethodGet, "/animations")
	require.Equal(t, http.StatusOK, code)
	var list []AnimationStatus
	require.NoError(t, json.Unmarshal(r.Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "slow", list[0].Name)
	assert.Equal(t, "60s", list[0].Duration)
	assert.False(t, list[0].Running)
}

func TestStartAndStop(t *testing.T) {
	a, cancel := setup(t)
	defer cancel()

	code, r := call(t, a, http.MethodPost, "/animations/dim/start")
	require.Equal(t, http.StatusOK, code)
	var st AnimationStatus
	require.NoError(t, json.Unmarshal(r.Data, &st))
	assert.True(t, st.Running)
	assert.True(t, st.Current)
	assert.Equal(t, 60000, st.TotalFrames)

	code, _ = call(t, a, http.MethodPost, "/animations/slow/stop")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, a, http.MethodPost, "/animations/dim/stop?finish=maybe")
	assert.Equal(t, http.StatusBadRequest, code)

	code, r = call(t, a, http.MethodPost, "/animations/dim/stop?finish=true")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(r.Data, &st))
	assert.False(t, st.Running)

	code, r = call(t, a, http.MethodGet, "/strip")
	require.Equal(t, http.StatusOK, code)
	var props map[string][]float64
	require.NoError(t, json.Unmarshal(r.Data, &props))
	assert.Equal(t, []float64{0.25}, props[strip.Brightness])
}

func TestUnknownAnimation(t *testing.T) {
	a, cancel := setup(t)
	defer cancel()

	code, r := call(t, a, http.MethodPost, "/animations/sparkle/start")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", r.Status)
	code, _ = call(t, a, http.MethodPost, "/animations/sparkle/stop")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStatusOfUnknownName(t *testing.T) {
	a, cancel := setup(t)
	defer cancel()

	_, ok := a.status("sparkle")
	assert.False(t, ok)
	st, ok := a.status("dim")
	require.True(t, ok)
	assert.Equal(t, "dim", st.Name)
	assert.False(t, st.Running)
}

func TestSchedulerGone(t *testing.T) {
	a, cancel := setup(t)
	cancel()
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/animations", nil)
	ctx, stop := context.WithTimeout(req.Context(), 20*time.Millisecond)
	defer stop()
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
