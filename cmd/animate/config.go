package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tanema/gween/ease"
)

type config struct {
	Frames   uint64        `env:"ANIMATE_FRAMES" envDefault:"60"`
	FPS      float64       `env:"ANIMATE_FPS" envDefault:"60"`
	Duration time.Duration `env:"ANIMATE_DURATION" envDefault:"500ms"`
	Easing   string        `env:"ANIMATE_EASING" envDefault:"inOutQuad"`
	Dump     string        `env:"ANIMATE_DUMP"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

func easingByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

func (c config) frameDuration() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

func (c config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", c.FPS)
	}
	if c.Frames == 0 {
		return fmt.Errorf("frames must be positive")
	}
	if _, err := easingByName(c.Easing); err != nil {
		return err
	}
	return nil
}
