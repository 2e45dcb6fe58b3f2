package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	framesKey   = "frames"
	fpsKey      = "fps"
	durationKey = "duration"
	easingKey   = "easing"
	dumpKey     = "dump"
	quietKey    = "quiet"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	cmd := &cli.Command{
		Name:  "animate",
		Usage: "Drive a small animated scene frame by frame",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  framesKey,
				Usage: "Number of frames to step",
				Value: cfg.Frames,
			},
			&cli.FloatFlag{
				Name:  fpsKey,
				Usage: "Frames per second",
				Value: cfg.FPS,
			},
			&cli.DurationFlag{
				Name:  durationKey,
				Usage: "Duration of the slide animation",
				Value: cfg.Duration,
			},
			&cli.StringFlag{
				Name:  easingKey,
				Usage: "Easing of the slide animation",
				Value: cfg.Easing,
			},
			&cli.StringFlag{
				Name:  dumpKey,
				Usage: "Write a plain text frame dump to this file",
				Value: cfg.Dump,
			},
			&cli.BoolFlag{
				Name:  quietKey,
				Usage: "Skip the frame table",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config{
		Frames:   cmd.Uint(framesKey),
		FPS:      cmd.Float(fpsKey),
		Duration: cmd.Duration(durationKey),
		Easing:   cmd.String(easingKey),
		Dump:     cmd.String(dumpKey),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	start := time.Now()
	log.Printf("Animating %d frames at %v fps", cfg.Frames, cfg.FPS)
	defer func() {
		log.Printf("Finished in %v", time.Since(start))
	}()

	s, err := newScene()
	if err != nil {
		return err
	}
	defer s.stop()

	if err := s.start(cfg, func(name string) {
		log.Printf("%s settled at frame %d (%v)", name, s.loop.Frame(), s.loop.Elapsed())
	}); err != nil {
		return err
	}
	s.interactions.RunAfterInteractions(func() {
		log.Printf("Interactions idle after frame %d", s.loop.Frame())
	})

	rows := make([]frameRow, 0, cfg.Frames)
	for range cfg.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows = append(rows, s.step(cfg))
	}

	if !cmd.Bool(quietKey) {
		printTable(rows)
	}

	digest := s.recorder.Digest()
	log.Printf(
		"Applied %s styles to card and %s to shadow, digest %016x",
		humanize.Comma(int64(s.card.Applied())),
		humanize.Comma(int64(s.shadow.Applied())),
		digest,
	)

	if cfg.Dump != "" {
		f, err := os.Create(cfg.Dump)
		if err != nil {
			return fmt.Errorf("create dump: %w", err)
		}
		defer f.Close()
		writeFrameDump(f, rows, digest)
		log.Printf("Wrote frame dump to %s", cfg.Dump)
	}
	return nil
}

func printTable(rows []frameRow) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Frame", "X", "Opacity", "Scale", "Shadow X", "Pending"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range rows {
		table.Append([]string{
			humanize.Comma(int64(r.Frame)),
			humanize.FtoaWithDigits(r.X, 3),
			humanize.FtoaWithDigits(r.Opacity, 3),
			humanize.FtoaWithDigits(r.Scale, 3),
			humanize.FtoaWithDigits(r.ShadowX, 3),
			strconv.Itoa(r.Pending),
		})
	}
	table.Render()
}
