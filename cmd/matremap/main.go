// Command matremap decodes palette colors and recolors scene materials.
//
// Usage:
//
//	matremap decode '#FFD43B' 66c2a5
//	matremap resolve -category sk sedlova.001 plocha
//	matremap palette -format json
//	matremap swatch -o palette.png
//	matremap remap -scene city.json -category sk -o city.sk.json
//	matremap reset -scene city.json -all -o empty.json
//
// Every sub-command accepts -palette FILE (YAML or JSON) to replace the
// built-in palette and -v for debug logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/matcolor"
	"github.com/gogpu/matcolor/editor"
	"github.com/gogpu/matcolor/palette"
	"github.com/gogpu/matcolor/swatch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "matremap:", err)
		}
		os.Exit(2)
	}
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"decode", "decode HEX... - print linear RGBA for hex colors", runDecode},
	{"resolve", "resolve -category KEY NAME... - print the palette color of material names", runResolve},
	{"palette", "palette [-format yaml|json] - print the active palette", runPalette},
	{"swatch", "swatch -o FILE - render the palette as PNG", runSwatch},
	{"remap", "remap -scene FILE -category KEY - recolor selected objects' materials", runRemap},
	{"reset", "reset -scene FILE [-all] - drop unused data, or everything with -all", runReset},
}

// env carries the shared flags and streams of one invocation.
type env struct {
	stdout, stderr io.Writer
	palettePath    string
	verbose        bool
}

func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVar(&e.palettePath, "palette", "", "palette file (.yaml, .yml or .json); built-in palette if empty")
	fs.BoolVar(&e.verbose, "v", false, "debug logging")
	return fs
}

// setup installs the logger and loads the palette after flags are parsed.
func (e *env) setup() (*palette.Resolver, error) {
	level := slog.LevelInfo
	if e.verbose {
		level = slog.LevelDebug
	}
	matcolor.SetLogger(slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level})))

	if e.palettePath == "" {
		return palette.NewResolver(palette.Default())
	}
	f, err := palette.Load(e.palettePath)
	if err != nil {
		return nil, err
	}
	return f.Resolver()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return flag.ErrHelp
	}
	e := &env{stdout: stdout, stderr: stderr}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, e, args[1:])
		}
	}
	usage(stderr)
	return fmt.Errorf("unknown command %q", args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: matremap <command> [flags]")
	for _, c := range commands {
		fmt.Fprintln(w, "  "+c.usage)
	}
}

func runDecode(_ context.Context, e *env, args []string) error {
	fs := e.flags("decode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := e.setup(); err != nil {
		return err
	}
	var errs []error
	for _, hex := range fs.Args() {
		c, err := matcolor.DecodeHex(hex)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		printColor(e.stdout, hex, c)
	}
	return errors.Join(errs...)
}

func runResolve(_ context.Context, e *env, args []string) error {
	fs := e.flags("resolve")
	category := fs.String("category", palette.CategoryRoof, "palette category key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := e.setup()
	if err != nil {
		return err
	}
	for _, name := range fs.Args() {
		hex, found := res.Lookup(name, *category)
		label := name
		if !found {
			label += " (default " + hex + ")"
		}
		printColor(e.stdout, label, res.Resolve(name, *category))
	}
	return nil
}

func runPalette(_ context.Context, e *env, args []string) error {
	fs := e.flags("palette")
	formatName := fs.String("format", "yaml", "output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	format, err := palette.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	res, err := e.setup()
	if err != nil {
		return err
	}
	return palette.Encode(e.stdout, format, palette.File{Default: res.Fallback(), Categories: res.Table()})
}

func runSwatch(_ context.Context, e *env, args []string) error {
	fs := e.flags("swatch")
	output := fs.String("o", "palette.png", "output PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res, err := e.setup()
	if err != nil {
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := swatch.WritePNG(f, res); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	matcolor.Logger().Info("swatch saved", "path", *output)
	return nil
}

func runRemap(ctx context.Context, e *env, args []string) error {
	fs := e.flags("remap")
	scenePath := fs.String("scene", "", "scene snapshot (JSON)")
	category := fs.String("category", palette.CategoryRoof, "palette category key")
	output := fs.String("o", "", "output scene file; stdout if empty")
	workers := fs.Int("workers", 0, "concurrent color lookups; 0 means GOMAXPROCS")
	removeEmpty := fs.Bool("remove-empty", false, "delete selected EMPTY objects first")
	terrain := fs.Bool("terrain", false, "rename selected terrain objects and leave them out of the remap")
	clearVC := fs.Bool("clear-vc", false, "remove vertex-color layers of selected objects")
	ensureVC := fs.Bool("ensure-vc", false, "add a vertex-color layer to selected meshes that have none")
	purge := fs.Bool("purge", false, "drop materials and meshes left without users")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		return errors.New("remap: -scene is required")
	}
	res, err := e.setup()
	if err != nil {
		return err
	}
	scn, err := editor.LoadScene(*scenePath)
	if err != nil {
		return err
	}

	if *removeEmpty {
		editor.RemoveEmpty(scn)
	}
	if *terrain {
		for _, name := range editor.IsolateTerrain(scn) {
			matcolor.Logger().Info("terrain isolated", "object", name)
		}
	}
	var opts []editor.Option
	if *workers > 0 {
		opts = append(opts, editor.WithWorkers(*workers))
	}
	report, err := editor.RemapMaterials(ctx, scn, res, *category, opts...)
	if err != nil {
		return err
	}
	for _, name := range report.Defaulted {
		matcolor.Logger().Warn("no palette entry, used default color", "material", name, "category", *category)
	}
	if *clearVC {
		n := editor.ClearVertexColors(scn)
		matcolor.Logger().Info("vertex colors cleared", "layers", n)
	}
	if *ensureVC {
		n := editor.EnsureVertexColors(scn)
		matcolor.Logger().Info("vertex colors added", "layers", n)
	}
	if *purge {
		editor.PurgeUnused(scn)
	}
	return e.writeScene(*output, scn)
}

func runReset(_ context.Context, e *env, args []string) error {
	fs := e.flags("reset")
	scenePath := fs.String("scene", "", "scene snapshot (JSON)")
	output := fs.String("o", "", "output scene file; stdout if empty")
	all := fs.Bool("all", false, "delete every object, material and mesh")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		return errors.New("reset: -scene is required")
	}
	if _, err := e.setup(); err != nil {
		return err
	}
	scn, err := editor.LoadScene(*scenePath)
	if err != nil {
		return err
	}
	if *all {
		editor.Reset(scn)
	} else {
		editor.PurgeUnused(scn)
	}
	return e.writeScene(*output, scn)
}

func (e *env) writeScene(path string, scn *editor.Scene) error {
	if path == "" {
		return editor.WriteScene(e.stdout, scn)
	}
	return editor.SaveScene(path, scn)
}

func printColor(w io.Writer, label string, c matcolor.RGBA) {
	r, g, b, a := c.Tuple()
	fmt.Fprintf(w, "%s\t%.6f %.6f %.6f %.1f\n", label, r, g, b, a)
}
