package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bigtext/config"
	"github.com/lixenwraith/bigtext/font"
	"github.com/lixenwraith/bigtext/render"
	"github.com/lixenwraith/bigtext/terminal"
)

// fontList collects repeated -font flags in order
type fontList []string

func (f *fontList) String() string {
	return strings.Join(*f, ",")
}

func (f *fontList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the preview crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBIGTEXT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bigtext", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fonts fontList
	fs.Var(&fonts, "font", "font file to load; repeat to layer files, later glyphs win (default: built-in font)")
	fontDirFlag := fs.String("font-dir", "", "directory whose *.txt font files load before -font files")
	colorFlag := fs.String("color", "", "foreground color: black, red, green, yellow, blue, magenta, cyan, white, default")
	fillFlag := fs.String("fill", "", "character drawn in place of ink (default #)")
	defaults := config.Default()
	rowFlag := fs.Int("row", defaults.Row, "top row of the banner in -preview, 1-based")
	colFlag := fs.Int("col", defaults.Col, "left column of the banner in -preview, 1-based")
	envFlag := fs.String("env", "", "env file (default: first of .env.local, .env, .env.example)")
	modeFlag := fs.String("mode", "", "color output: auto, always, never")
	charsetFlag := fs.String("charset", "", "code page of the font keys: raw, cp1251, cp1252, cp866, koi8-r, iso-8859-1 (default raw)")
	pngFlag := fs.String("png", "", "also write the banner to this PNG file")
	scaleFlag := fs.Int("scale", 8, "PNG pixels per cell")
	previewFlag := fs.Bool("preview", false, "show the banner full-screen until a key is pressed")
	exportFlag := fs.String("export", "", "write the loaded font table to this file")
	debugFlag := fs.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bigtext [flags] text...\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(".", *envFlag)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	// Explicit flags override file and environment settings
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch f.Name {
		case "font":
			cfg.Fonts = fonts
		case "font-dir":
			cfg.FontDir = *fontDirFlag
		case "color":
			cfg.Color, flagErr = terminal.ParseColor(*colorFlag)
		case "fill":
			cfg.Fill, flagErr = config.ParseFill(*fillFlag)
		case "row":
			cfg.Row = *rowFlag
		case "col":
			cfg.Col = *colFlag
		case "mode":
			cfg.Mode, flagErr = terminal.ParseStyleMode(*modeFlag)
		case "charset":
			cfg.Charset, flagErr = font.ParseCharset(*charsetFlag)
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "bigtext: %v\n", flagErr)
		return 2
	}

	table, err := loadFonts(cfg.FontDir, cfg.Fonts)
	if err != nil {
		fmt.Fprintf(stderr, "bigtext: %v\n", err)
		return 1
	}

	if *exportFlag != "" {
		if err := exportFont(*exportFlag, table); err != nil {
			fmt.Fprintf(stderr, "bigtext: %v\n", err)
			return 1
		}
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		if *exportFlag != "" {
			return 0
		}
		fs.Usage()
		return 2
	}

	renderer := render.New(table)
	req := render.Request{
		Text:     cfg.Charset.Encode(text),
		Color:    cfg.Color,
		Position: render.Position{Row: cfg.Row, Col: cfg.Col},
		Fill:     cfg.Fill,
	}
	log.Printf("bigtext: rendering %q as %v, %d glyph(s), height %d, color %v", text, cfg.Charset, table.Len(), renderer.Height(), cfg.Color)

	if *pngFlag != "" {
		if err := render.SavePNG(*pngFlag, renderer.Image(req, *scaleFlag)); err != nil {
			fmt.Fprintf(stderr, "bigtext: %v\n", err)
			return 1
		}
	}

	if *previewFlag {
		if err := runPreview(renderer, req); err != nil {
			fmt.Fprintf(stderr, "bigtext: preview: %v\n", err)
			return 1
		}
		return 0
	}

	if cfg.Mode.Enabled(stdout) {
		err = renderer.Print(stdout, req)
	} else {
		err = renderer.PrintPlain(stdout, req)
	}
	if err != nil {
		fmt.Fprintf(stderr, "bigtext: %v\n", err)
		return 1
	}
	return 0
}

// loadFonts builds the font table from dir's files followed by paths
// With neither, the built-in font is used
func loadFonts(dir string, paths []string) (*font.Table, error) {
	if dir != "" {
		found, err := font.Discover(dir)
		if err != nil {
			return nil, err
		}
		paths = append(found, paths...)
	}

	if len(paths) == 0 {
		return font.Builtin(), nil
	}

	table := font.NewTable()
	for _, path := range paths {
		if err := table.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func exportFont(path string, table *font.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := font.Encode(f, table); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	log.Printf("bigtext: exported %d glyph(s) to %s", table.Len(), path)
	return f.Close()
}

func runPreview(renderer *render.Renderer, req render.Request) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer.Preview(screen, req)
	return nil
}
