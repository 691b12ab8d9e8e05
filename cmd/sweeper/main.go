package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dchistyakov/sweeper/internal/config"
	"github.com/dchistyakov/sweeper/internal/mines"
	"github.com/dchistyakov/sweeper/internal/solver"
)

var log = logrus.New()

type options struct {
	preset     string
	width      int
	height     int
	mineCount  int
	iterations int
	lua        bool
	seed       uint64
	quiet      bool
}

func parseOptions() options {
	var opts options
	flag.StringVar(&opts.preset, "preset", "beginner", "field preset: beginner, intermediate or expert")
	flag.IntVar(&opts.width, "width", 0, "field width (overrides preset)")
	flag.IntVar(&opts.height, "height", 0, "field height (overrides preset)")
	flag.IntVar(&opts.mineCount, "mines", 0, "mine count (overrides preset)")
	flag.IntVar(&opts.iterations, "iterations", 0, "run this many independent trials and report aggregate stats")
	flag.BoolVar(&opts.lua, "lua", false, "use the scripted (Lua) minefield backend")
	flag.Uint64Var(&opts.seed, "seed", 0, "field generation seed (0 picks one at random)")
	flag.BoolVar(&opts.quiet, "quiet", false, "skip the board dump")
	flag.Parse()
	return opts
}

func resolveParams(opts options) (mines.GameParams, error) {
	params, err := mines.ParsePreset(opts.preset)
	if err != nil {
		return mines.GameParams{}, err
	}
	if opts.width > 0 {
		params.Width = opts.width
	}
	if opts.height > 0 {
		params.Height = opts.height
	}
	if opts.mineCount > 0 {
		params.MineCount = opts.mineCount
	}
	return params, nil
}

// newField builds one minefield for trial n, native or scripted.
func newField(opts options, params mines.GameParams, n uint64) (mines.Minefield, error) {
	if opts.lua {
		return mines.NewLuaField(params, int64(opts.seed+n))
	}
	return mines.NewField(params, rand.New(rand.NewPCG(opts.seed, n)))
}

func main() {
	opts := parseOptions()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	setupLogging(cfg)

	params, err := resolveParams(opts)
	if err != nil {
		log.Fatal(err)
	}
	if opts.seed == 0 {
		opts.seed = rand.Uint64()
	}

	if opts.iterations > 0 {
		stats, err := runBatch(params, opts)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("solved %d/%d (%.3f), %s, avg luck %.3f\n",
			stats.solved, stats.runs, stats.successRate(), params, stats.meanLuck())
		return
	}

	field, err := newField(opts, params, 0)
	if err != nil {
		log.Fatal(err)
	}
	s, err := solver.New(field)
	if err != nil {
		log.Fatal(err)
	}
	solved, luck, err := s.Solve()
	if err != nil {
		log.Fatal("solve aborted: ", err)
	}
	if !opts.quiet {
		fmt.Print(s.Dump())
		fmt.Println()
	}
	fmt.Printf("solved: %t, luck: %.3f\n", solved, luck)
	if !solved {
		os.Exit(1)
	}
}
