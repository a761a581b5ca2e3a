// Package api exposes the animation playlist over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/strip"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ledanim.api")
}

// Response wraps every reply.
type Response struct {
	Status string      `json:"status"`
	Error  string      `json:"error,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// AnimationStatus describes one playlist entry.
type AnimationStatus struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	Running      bool   `json:"running"`
	Current      bool   `json:"current"`
	CurrentFrame int    `json:"currentFrame"`
	TotalFrames  int    `json:"totalFrames"`
	Duration     string `json:"duration"`
}

// Api serves the control endpoints.
type Api struct {
	sched      *anim.Scheduler
	controller *stream.Controller
	strip      *strip.Strip
	router     *gin.Engine
}

// NewApi creates an Api. The controller and strip are only touched on the
// scheduler goroutine.
func NewApi(sched *anim.Scheduler, controller *stream.Controller, s *strip.Strip) *Api {
	a := new(Api)
	a.sched = sched
	a.controller = controller
	a.strip = s
	a.router = gin.New()
	a.router.Use(gin.Recovery(), cors.Default())
	a.setupRoutes()
	return a
}

func (a *Api) setupRoutes() {
	animations := a.router.Group("/animations")
	{
		animations.GET("", a.handleGetAnimations)
		animations.POST("/:name/start", a.handleStartAnimation)
		animations.POST("/:name/stop", a.handleStopAnimation)
	}
	a.router.GET("/strip", a.handleGetStrip)
}

// Handler returns the HTTP handler of the Api.
func (a *Api) Handler() http.Handler {
	return a.router
}

// Serve listens on addr until ctx is cancelled.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.router}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	tracer().Infof("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// do runs fn on the scheduler goroutine, answering 503 if that fails.
func (a *Api) do(c *gin.Context, fn func()) bool {
	if err := a.sched.Do(c.Request.Context(), fn); err != nil {
		c.JSON(http.StatusServiceUnavailable, Response{Status: "error", Error: err.Error()})
		return false
	}
	return true
}

// status reports on the named animation. It returns false if the controller
// does not know the name.
func (a *Api) status(name string) (AnimationStatus, bool) {
	an, ok := a.controller.Get(name)
	if !ok {
		return AnimationStatus{}, false
	}
	return AnimationStatus{
		Name:         name,
		ID:           an.ID(),
		Running:      an.IsAnimated(),
		Current:      a.controller.Current() == name,
		CurrentFrame: an.CurrentFrame(),
		TotalFrames:  an.TotalFrames(),
		Duration:     an.Duration().String(),
	}, true
}

func (a *Api) handleGetAnimations(c *gin.Context) {
	var list []AnimationStatus
	if !a.do(c, func() {
		for _, name := range a.controller.Names() {
			if st, ok := a.status(name); ok {
				list = append(list, st)
			}
		}
	}) {
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: list})
}

func (a *Api) handleStartAnimation(c *gin.Context) {
	name := c.Param("name")
	var err error
	var st AnimationStatus
	if !a.do(c, func() {
		if err = a.controller.Play(name); err == nil {
			st, _ = a.status(name)
		}
	}) {
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Status: "error", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: st})
}

func (a *Api) handleStopAnimation(c *gin.Context) {
	name := c.Param("name")
	finish, err := strconv.ParseBool(c.DefaultQuery("finish", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Status: "error", Error: "finish must be a boolean"})
		return
	}
	var found, stopped bool
	var st AnimationStatus
	if !a.do(c, func() {
		var an *anim.Animation
		if an, found = a.controller.Get(name); !found {
			return
		}
		if a.controller.Current() == name {
			stopped = an.IsAnimated()
			a.controller.Stop(finish)
		} else {
			stopped = an.Stop(finish)
		}
		st, _ = a.status(name)
	}) {
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, Response{Status: "error", Error: "unknown animation " + name})
		return
	}
	if !stopped {
		c.JSON(http.StatusConflict, Response{Status: "error", Error: name + " is not running", Data: st})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: st})
}

func (a *Api) handleGetStrip(c *gin.Context) {
	props := make(map[string][]float64)
	if !a.do(c, func() {
		for name, v := range a.strip.Properties() {
			props[name] = v.Components()
		}
	}) {
		return
	}
	c.JSON(http.StatusOK, Response{Status: "success", Data: props})
}
