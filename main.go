package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/config"
	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/strip"
)

type app struct {
	Config     config.Config
	Client     mqtt.Client
	Scheduler  *anim.Scheduler
	Strip      *strip.Strip
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
}

func newApp(cfg config.Config) (*app, error) {
	a := new(app)
	a.Config = cfg
	a.Scheduler = anim.NewScheduler(cfg.Scheduler.FPS, cfg.Interval(), nil)
	a.Strip = strip.New(cfg.Stream.Pixels)
	a.Controller = stream.NewController()
	for _, entry := range cfg.Animations {
		method, err := entry.Method()
		if err != nil {
			return nil, err
		}
		an := anim.NewAnimation(a.Scheduler, a.Strip, entry.Attributes(), entry.Duration(), method)
		if err := a.Controller.Add(entry.Name, an); err != nil {
			return nil, err
		}
	}
	a.Api = api.NewApi(a.Scheduler, a.Controller, a.Strip)
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connecting to %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	defer a.Client.Disconnect(250)

	go a.Scheduler.Run(ctx)
	if len(a.Config.Animations) > 0 {
		var err error
		if doErr := a.Scheduler.Do(ctx, func() { err = a.Controller.Start() }); doErr != nil {
			return doErr
		}
		if err != nil {
			return err
		}
	}

	go func() {
		if err := a.Api.Serve(ctx, a.Config.API.Listen); err != nil {
			log.Printf("api: %v", err)
		}
	}()

	err := a.Streamer.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	dump := flag.Bool("dump", false, "Print the playlist and exit.")
	flag.Parse()

	// Read the config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dump {
		fmt.Print(dumpPlaylist(cfg))
		return
	}
	log.Printf("Config: %d animations, %g fps, %d pixels", len(cfg.Animations), cfg.Scheduler.FPS, cfg.Stream.Pixels)

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	options := mqtt.NewClientOptions().
		AddBroker(cfg.Mqtt.URL).
		SetClientID(cfg.Mqtt.ClientID).
		SetUsername(cfg.Mqtt.Username).
		SetPassword(cfg.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Client, cfg.Mqtt.Topics.Stream, a.Scheduler, a.Strip, cfg.FrameInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
