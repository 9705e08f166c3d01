// Command arrangement reads a set of lines and prints the areas of the bounded
// faces of their arrangement.
//
// The default input on stdin is the number of lines, then four integers
// "x1 y1 x2 y2" for the two points defining each line. The output is the
// number of bounded faces, then each area in ascending order, one per line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/arrangement/advanced"
	"github.com/osuushi/arrangement/lineio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input          string
	format         string
	minArea        float64
	precision      int
	angleTolerance float64
	onLineTol      float64
	png            string
	scale          float64
	imgcat         bool
	dump           bool
	check          bool
	verbose        bool
	color          bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("arrangement", "Areas of the bounded faces of a line arrangement.")
	app.Arg("input", "Input file. Defaults to stdin.").StringVar(&cfg.input)
	app.Flag("format", "Input format.").Short('f').Default(string(lineio.FormatText)).EnumVar(&cfg.format, lineio.Formats...)
	app.Flag("min-area", "Drop bounded faces smaller than this.").Default(fmt.Sprint(advanced.MinArea)).Float64Var(&cfg.minArea)
	app.Flag("precision", "Digits after the decimal point in printed areas.").Default("9").IntVar(&cfg.precision)
	app.Flag("angle-eps", "Tolerance when ordering edges around a vertex.").Default("0").Float64Var(&cfg.angleTolerance)
	app.Flag("on-line-eps", "Relative tolerance for --check's on-line test.").Default(fmt.Sprint(advanced.DefaultOptions().OnLineTolerance)).Float64Var(&cfg.onLineTol)
	app.Flag("png", "Draw the arrangement to this PNG file.").StringVar(&cfg.png)
	app.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64Var(&cfg.scale)
	app.Flag("imgcat", "Also print the drawing inline (iTerm only). Requires --png.").BoolVar(&cfg.imgcat)
	app.Flag("dump", "Dump the vertex and half-edge tables to stderr.").BoolVar(&cfg.dump)
	app.Flag("check", "Validate the half-edge structure before printing.").BoolVar(&cfg.check)
	app.Flag("verbose", "Log progress to stderr.").Short('v').BoolVar(&cfg.verbose)
	app.Flag("color", "Colorize log output.").Default("true").BoolVar(&cfg.color)
	return app
}

func main() {
	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(&cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", aurora.NewAurora(cfg.color).Red("error"), err)
		os.Exit(1)
	}
}

func run(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	au := aurora.NewAurora(cfg.color)
	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger.SetOutput(stderr)
	}

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	lines, err := lineio.Read(in, lineio.Format(cfg.format))
	if err != nil {
		return err
	}
	logger.Printf("%s %d lines", au.Bold("read"), len(lines))

	options := advanced.DefaultOptions()
	options.MinArea = cfg.minArea
	options.AngleTolerance = cfg.angleTolerance
	options.OnLineTolerance = cfg.onLineTol

	arr, err := build(lines, options)
	if err != nil {
		return err
	}
	if len(arr.Duplicates) > 0 {
		logger.Printf("%s identical lines %v", au.Yellow("skipped"), arr.Duplicates)
	}
	logger.Printf("%s %d vertices, %d half-edges", au.Bold("built"), len(arr.Vertices), len(arr.Edges))

	if cfg.dump {
		pretty.Fprintf(stderr, "%# v\n", arr)
	}
	if cfg.check {
		if err := arr.Validate(); err != nil {
			return errors.Wrap(err, "invalid arrangement")
		}
		logger.Printf("%s half-edge structure", au.Green("validated"))
	}
	if cfg.verbose {
		faces := arr.Faces()
		for i := range faces {
			logger.Println(faces[i].String())
		}
	}

	if cfg.png != "" {
		if cfg.imgcat {
			err = arr.Preview(cfg.png, cfg.scale)
		} else {
			err = arr.DrawPNG(cfg.png, cfg.scale)
		}
		if err != nil {
			return err
		}
		logger.Printf("%s %s", au.Bold("drew"), cfg.png)
	}

	return lineio.WriteAreas(stdout, arr.Areas(), cfg.precision)
}

func build(lines []advanced.Line, options advanced.Options) (arr *advanced.Arrangement, err error) {
	defer func() {
		err = advanced.HandleArrangementPanicRecover(recover())
	}()
	return advanced.Build(lines, options), nil
}
