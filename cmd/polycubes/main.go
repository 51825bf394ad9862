// Command polycubes counts, and optionally renders, the distinct polycube
// shapes of a given size.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/polycube/cache"
	"github.com/katalvlaran/polycube/growth"
	"github.com/katalvlaran/polycube/render"
)

// logAdapter bridges charmbracelet/log's *log.Logger to growth.Logger's
// narrower Infof-only interface.
type logAdapter struct {
	*log.Logger
}

func (a logAdapter) Infof(format string, args ...interface{}) {
	a.Logger.Info(fmt.Sprintf(format, args...))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := log.New(os.Stderr)

	flags := pflag.NewFlagSet("polycubes", pflag.ContinueOnError)
	useCache := flags.Bool("cache", true, "persist and reuse each computed generation on disk")
	noCache := flags.Bool("no-cache", false, "disable --cache")
	doRender := flags.Bool("render", false, "write a PNG mosaic of the resulting shapes")
	noRender := flags.Bool("no-render", false, "disable --render")
	cacheDir := flags.String("cache-dir", ".polycube-cache", "directory for cached generations")
	renderPath := flags.String("render-path", "polycubes.png", "output path for --render")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: polycubes generate N [flags]")
		flags.PrintDefaults()
	}

	if len(args) < 1 || args[0] != "generate" {
		flags.Usage()
		return 2
	}
	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}
	if *noCache {
		*useCache = false
	}
	if *noRender {
		*doRender = false
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "generate requires exactly one argument: N")
		return 2
	}

	n, err := parseSize(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	opts := []growth.Option{growth.WithLogger(logAdapter{logger})}
	if *useCache {
		c, err := cache.NewFileCache(*cacheDir)
		if err != nil {
			logger.Error("cache unavailable, continuing without it", "err", err)
		} else {
			opts = append(opts, growth.WithCache(c))
		}
	}

	start := time.Now()
	shapes, _, err := growth.Generate(n, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	elapsed := time.Since(start)

	fmt.Printf("Found %d unique polycubes\n", len(shapes))
	fmt.Printf("Elapsed: %.3fs\n", elapsed.Seconds())

	if *doRender {
		r := render.PNGRenderer{}
		if err := r.Render(shapes, *renderPath); err != nil {
			logger.Error("render failed", "err", err)
			return 1
		}
		fmt.Printf("Rendered to %s\n", *renderPath)
	}

	return 0
}

func parseSize(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid size %q: must be an integer", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid size %d: must be >= 1", n)
	}

	return n, nil
}
