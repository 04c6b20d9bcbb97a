package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/frudas24/padnexus/internal/config"
	"github.com/schollz/progressbar/v3"
)

// runListGames scans the library with a progress bar and prints one game per line.
func runListGames(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setDebug(debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var bar *progressbar.ProgressBar
	games := newLibrary(cfg).Scan(ctx, func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "scanning")
		}
		_ = bar.Set(done)
	})
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	for _, g := range games {
		if g.AppID != "" {
			fmt.Printf("%s\t%s\t%s\n", g.Name, g.AppID, g.Path)
			continue
		}
		fmt.Printf("%s\t-\t%s\n", g.Name, g.Path)
	}
	return nil
}
