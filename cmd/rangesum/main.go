package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/g-m-twostay/go-ostree/RangeSum"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/ugorji/go/codec"
	"github.com/urfave/cli/v2"
)

var (
	errOutOfRange   = errors.New("value outside int32")
	errMissingBound = errors.New("missing bound")
	errMismatch     = errors.New("count differs from the naive count")
)

var log = slog.Default().With("system", "rangesum")

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// request is the JSON input. Bounds are pointers so an absent bound can be told
// apart from 0.
type request struct {
	Nums  []int64 `codec:"nums"`
	Lower *int64  `codec:"lower"`
	Upper *int64  `codec:"upper"`
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := &cli.App{
		Name:      "rangesum",
		Usage:     "count the contiguous ranges of a sequence whose sum lies in [lower, upper]",
		Version:   versioninfo.Short(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Usage:   `JSON file holding {"nums": [...], "lower": L, "upper": U}; stdin when empty`,
			EnvVars: []string{"RANGESUM_INPUT"},
		},
		&cli.Int64Flag{
			Name:    "lower",
			Usage:   "lower bound, overrides the input's",
			EnvVars: []string{"RANGESUM_LOWER"},
		},
		&cli.Int64Flag{
			Name:    "upper",
			Usage:   "upper bound, overrides the input's",
			EnvVars: []string{"RANGESUM_UPPER"},
		},
		&cli.BoolFlag{
			Name:    "verify",
			Usage:   "check the count against the quadratic count",
			EnvVars: []string{"RANGESUM_VERIFY"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"RANGESUM_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		var level slog.Level
		switch strings.ToLower(cctx.String("log-level")) {
		case "error":
			level = slog.LevelError
		case "warn":
			level = slog.LevelWarn
		case "info":
			level = slog.LevelInfo
		case "debug":
			level = slog.LevelDebug
		default:
			return fmt.Errorf("unknown log level: %q", cctx.String("log-level"))
		}
		log = slog.New(slog.NewJSONHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})).With("system", "rangesum")
		return nil
	}
	app.Action = countAction
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Fprintln(cctx.App.Writer, versioninfo.Short())
				return nil
			},
		},
	}
	return app
}

func countAction(cctx *cli.Context) error {
	in := cctx.App.Reader
	if path := cctx.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}
	req, err := decodeRequest(in)
	if err != nil {
		return err
	}
	if cctx.IsSet("lower") {
		v := cctx.Int64("lower")
		req.Lower = &v
	}
	if cctx.IsSet("upper") {
		v := cctx.Int64("upper")
		req.Upper = &v
	}
	nums, lower, upper, err := req.validate()
	if err != nil {
		return err
	}

	start := time.Now()
	n := RangeSum.Count(nums, lower, upper)
	log.Info("counted range sums", "len", len(nums), "lower", lower, "upper", upper, "count", n, "duration", time.Since(start))

	if cctx.Bool("verify") {
		if want := RangeSum.Naive(nums, lower, upper); want != n {
			return fmt.Errorf("%w: got %d, naive %d", errMismatch, n, want)
		}
		log.Debug("count verified", "count", n)
	}
	fmt.Fprintln(cctx.App.Writer, n)
	return nil
}

func decodeRequest(r io.Reader) (*request, error) {
	var jh codec.JsonHandle
	var req request
	if err := codec.NewDecoder(r, &jh).Decode(&req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return &req, nil
}

func checkInt32(what string, v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s %d: %w", what, v, errOutOfRange)
	}
	return int32(v), nil
}

// validate narrows the request to the counter's types.
func (req *request) validate() (nums []int32, lower, upper int32, err error) {
	if req.Lower == nil {
		return nil, 0, 0, fmt.Errorf("lower: %w", errMissingBound)
	}
	if req.Upper == nil {
		return nil, 0, 0, fmt.Errorf("upper: %w", errMissingBound)
	}
	if lower, err = checkInt32("lower", *req.Lower); err != nil {
		return
	}
	if upper, err = checkInt32("upper", *req.Upper); err != nil {
		return
	}
	nums = make([]int32, len(req.Nums))
	for i, v := range req.Nums {
		if nums[i], err = checkInt32(fmt.Sprintf("nums[%d]", i), v); err != nil {
			return nil, 0, 0, err
		}
	}
	return
}
