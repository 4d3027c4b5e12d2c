/*
Command bmfcli is an interactive tool to inspect BMFont bitmap fonts.

Usage:

	bmfcli -font SegoeUI_13px -dir ./fonts [-trace Debug|Info|Error]

Commands are entered at the prompt in the form "command:argument", e.g.
"glyph:A" or "layout:Hello World". Enter "help" for a list of commands.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.bmfont":         "Info",
		"trace.bmfont.bmf":     "Error",
		"trace.bmfont.layout":  "Error",
		"trace.bmfont.atlas":   "Error",
		"trace.bmfont.query":   "Error",
		"trace.bmfont.fontmgr": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load, e.g. SegoeUI_13px")
	fontdir := flag.String("dir", ".", "Directory of font files and pages")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to BMFont CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("bmf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, loader: atlas.NewImageLoader(), kerning: true}
	//
	// load font to use
	if err := intp.loadFont(*fontdir, *fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	level := tracing.LevelInfo
	switch *tlevel {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
	case "Error":
		level = tracing.LevelError
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	for _, key := range []string{"bmfont", "bmfont.bmf", "bmfont.layout", "bmfont.atlas", "bmfont.query", "bmfont.fontmgr"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	renderer *bmfont.Renderer
	loader   *atlas.ImageLoader
	repl     *readline.Instance
	kerning  bool
}

func (intp *Intp) String() string {
	if intp == nil || intp.renderer == nil {
		return "()"
	}
	f := intp.renderer.Font()
	return fmt.Sprintf("( font=%q, glyphs=%d, kerning=%v )", f.Name(), f.Glyphs.Len(), intp.kerning)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its argument. format holds an optional output
// target, e.g. a file name.
type Op struct {
	code   int
	arg    string
	format string
}

const (
	// op-codes QUIT and PAGES will not have arguments
	QUIT int = iota
	PAGES
	// op-codes below may have arguments
	HELP
	INFO
	GLYPH
	KERN
	KERNING
	LAYOUT
	MEASURE
	MISSING
	VIEW
	DRAW
)

var opMap = map[string]int{
	"quit":    QUIT,
	"pages":   PAGES,
	"help":    HELP,
	"info":    INFO,
	"glyph":   GLYPH,
	"kern":    KERN,
	"kerning": KERNING,
	"layout":  LAYOUT,
	"measure": MEASURE,
	"missing": MISSING,
	"view":    VIEW,
	"draw":    DRAW,
}

var opNames = []string{
	"quit",
	"pages",
	"help",
	"info",
	"glyph",
	"kern",
	"kerning",
	"layout",
	"measure",
	"missing",
	"view",
	"draw",
}

// parseCommand splits a line of the form "command:argument[:format]".
// Text arguments may contain spaces and colons; for commands writing images,
// a trailing ":<name>.png" is taken as the output file.
func parseCommand(line string) *Op {
	cmd, arg, _ := strings.Cut(line, ":")
	code, ok := opMap[strings.ToLower(strings.TrimSpace(cmd))]
	if !ok {
		tracer().Infof("unknown command %q", cmd)
		return &Op{code: HELP}
	}
	op := &Op{code: code}
	if code <= PAGES {
		return op
	}
	op.arg = arg
	switch code {
	case VIEW, DRAW:
		if i := strings.LastIndex(arg, ":"); i >= 0 && strings.HasSuffix(strings.ToLower(arg), ".png") {
			op.arg, op.format = arg[:i], arg[i+1:]
		}
	case KERN:
		op.arg, op.format, _ = strings.Cut(arg, ":")
	}
	if op.arg == "" {
		tracer().Debugf("%s", opNames[op.code])
	} else {
		tracer().Debugf("%s: '%s'", opNames[op.code], op.arg)
	}
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	PAGES:   pagesOp,
	HELP:    helpOp,
	INFO:    infoOp,
	GLYPH:   glyphOp,
	KERN:    kernOp,
	KERNING: kerningOp,
	LAYOUT:  layoutOp,
	MEASURE: measureOp,
	MISSING: missingOp,
	VIEW:    viewOp,
	DRAW:    drawOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", *op)
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(dir, fontname string) error {
	if fontname == "" {
		return fmt.Errorf("no font given, use flag -font")
	}
	r, err := bmfont.OpenRenderer(dir, fontname, intp.loader)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.renderer = r
	f := r.Font()
	tracer().Infof("loaded font = %s", f.Name())
	pterm.Printf("font %q: %d glyphs, %d kerning pairs, %d of %d pages bound\n",
		f.Name(), f.Glyphs.Len(), f.Kerning.Len(), r.Binding().BoundCount(), len(f.Pages))
	for _, w := range f.Warnings() {
		pterm.Warning.Println(w.String())
	}
	for _, e := range f.Errors() {
		pterm.Error.Println(e.Error())
	}
	return nil
}

// ----------------------------------------------------------------------

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
