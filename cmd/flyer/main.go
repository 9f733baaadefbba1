package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/flyer"
	"pkt.systems/flyer/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultPageSize  = "A4"
	defaultWidth     = 80
	minWrapWidth     = 20
	describeIndent   = 4
)

func init() {
	version.SetDefaultModule("pkt.systems/flyer")
}

type options struct {
	output    string
	links     bool
	logo      string
	qr        string
	qrURL     string
	theme     string
	pageSize  string
	boring    bool
	layers    bool
	openPane  bool
	maxPixels int
}

func defaultOptions() options {
	content := flyer.DefaultContent()
	return options{
		output:    flyer.DefaultOutputPath,
		logo:      content.LogoPath,
		qr:        content.QRPath,
		theme:     defaultThemeName,
		pageSize:  defaultPageSize,
		maxPixels: pdf.DefaultConfig().MaxImagePixels,
	}
}

func main() {
	var (
		listThemes  bool
		dryRun      bool
		verbose     bool
		showVersion bool
		osc8Flag    string
	)
	opts := defaultOptions()
	flags := pflag.NewFlagSet("flyer", pflag.ExitOnError)
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Output PDF path (- writes to stdout)")
	flags.StringVar(&opts.logo, "logo", opts.logo, "Logo image path, skipped when missing")
	flags.StringVar(&opts.qr, "qr", opts.qr, "QR code image path, skipped when missing")
	flags.StringVar(&opts.qrURL, "qr-url", "", "Generate the QR code from this URL when the QR image is missing")
	flags.StringVarP(&opts.theme, "theme", "t", opts.theme, "Theme name")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Black and grey print-friendly flyer")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&opts.pageSize, "page-size", opts.pageSize, "Page size: A3, A4, A5, Letter or Legal")
	flags.BoolVar(&opts.layers, "layers", false, "Put border, images, stars and text on separate PDF layers")
	flags.BoolVar(&opts.openPane, "open-layer-pane", false, "Open the layer pane in the viewer (implies --layers)")
	flags.IntVar(&opts.maxPixels, "max-image-pixels", opts.maxPixels, "Downscale images larger than this many pixels on either side")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "Hyperlink the output path: auto|on|off")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the layout instead of writing a PDF")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: flyer [flags]\n")
		fmt.Fprintf(os.Stderr, "\nWithout flags the flyer is written to %s.\n", flyer.DefaultOutputPath)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n\n", strings.Join(flags.Args(), " "))
		flags.Usage()
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes(os.Stdout)
		return
	}
	setupLogging(verbose)

	links, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	opts.links = links

	if opts.boring && opts.theme != defaultThemeName {
		fmt.Fprintf(os.Stderr, "warning: --boring overrides --theme %q\n", opts.theme)
	}
	if _, ok := flyer.ThemeByName(opts.theme); !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", opts.theme)
		printThemes(os.Stderr)
		os.Exit(2)
	}
	if _, ok := flyer.PageSize(opts.pageSize); !ok {
		fmt.Fprintf(os.Stderr, "unknown page size %q\n", opts.pageSize)
		os.Exit(2)
	}

	layout, err := buildLayout(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layout: %v\n", err)
		os.Exit(1)
	}
	if dryRun {
		printLayout(os.Stdout, layout, resolveWidth())
		return
	}
	if opts.output == "-" && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}
	if err := writeFlyer(opts, layout, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "render pdf: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	flyer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func selectTheme(opts options) (flyer.Theme, error) {
	if opts.boring {
		return flyer.BoringTheme(), nil
	}
	theme, ok := flyer.ThemeByName(opts.theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", opts.theme)
	}
	return theme, nil
}

func buildLayout(opts options) (flyer.Layout, error) {
	theme, err := selectTheme(opts)
	if err != nil {
		return flyer.Layout{}, err
	}
	size, ok := flyer.PageSize(opts.pageSize)
	if !ok {
		return flyer.Layout{}, fmt.Errorf("unknown page size %q", opts.pageSize)
	}
	content := flyer.DefaultContent()
	content.LogoPath = expandHome(opts.logo)
	content.QRPath = expandHome(opts.qr)
	if opts.qrURL != "" && !fileExists(content.QRPath) {
		data, err := flyer.QRCodePNG(opts.qrURL, flyer.DefaultQRPixels)
		if err != nil {
			return flyer.Layout{}, err
		}
		content.QRData = data
		flyer.Logger().Debug("generated qr code", "url", opts.qrURL, "bytes", len(data))
	}
	if err := flyer.ValidateContent(content); err != nil {
		return flyer.Layout{}, err
	}
	return flyer.GymFlyer(size, content, theme), nil
}

func renderConfig(opts options) pdf.Config {
	cfg := pdf.DefaultConfig()
	cfg.UseLayers = opts.layers || opts.openPane
	cfg.OpenLayerPane = opts.openPane
	if opts.maxPixels > 0 {
		cfg.MaxImagePixels = opts.maxPixels
	}
	return cfg
}

// writeFlyer renders the layout and reports where it went. The report goes
// to stderr when the PDF itself is written to stdout.
func writeFlyer(opts options, layout flyer.Layout, stdout, stderr io.Writer) error {
	req := pdf.RenderRequest{Layout: layout, Config: renderConfig(opts)}
	if opts.output == "-" {
		req.Writer = stdout
		if err := pdf.Render(req); err != nil {
			return err
		}
		fmt.Fprintln(stderr, "PDF generado: <stdout>")
		return nil
	}
	path := expandHome(opts.output)
	if err := pdf.RenderFile(path, req); err != nil {
		return err
	}
	shown := opts.output
	if opts.links {
		shown = fileLink(path, opts.output)
	}
	fmt.Fprintf(stdout, "PDF generado: %s\n", shown)
	return nil
}

func printThemes(w io.Writer) {
	for _, name := range flyer.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func printLayout(w io.Writer, layout flyer.Layout, width int) {
	wrap := max(width-describeIndent, minWrapWidth)
	fmt.Fprintf(w, "page %.2f x %.2f pt, %d elements\n", layout.Size.W, layout.Size.H, len(layout.Elements))
	for i, el := range layout.Elements {
		fmt.Fprintf(w, "%2d. %s [%s]\n", i+1, el.Kind(), el.LayerName())
		body := wordwrap.String(describeElement(el), wrap)
		fmt.Fprintln(w, indent.String(body, describeIndent))
	}
}

func describeElement(el flyer.Element) string {
	switch e := el.(type) {
	case flyer.RectElement:
		return fmt.Sprintf("box %s stroke %s width %g", formatBox(e.Box), e.Style.Stroke.Hex(), e.Style.StrokeWidth)
	case flyer.TextElement:
		f := e.Style.Font
		return fmt.Sprintf("%q centered on x=%.2f baseline y=%.2f font %s%s %gpt color %s",
			e.Text, e.X, e.Baseline, f.Family, fontSuffix(f.Style), f.Size, e.Style.Fill.Hex())
	case flyer.StarElement:
		s := e.Star
		return fmt.Sprintf("center (%.2f, %.2f) outer %.2f inner %.2f fill %s stroke %s",
			s.Center.X, s.Center.Y, s.OuterRadius, s.OuterRadius*s.InnerRadiusRatio,
			e.Style.Fill.Hex(), e.Style.Stroke.Hex())
	case flyer.ImageElement:
		return fmt.Sprintf("%s box %s source %s", e.Name, formatBox(e.Box), imageSource(e))
	default:
		return fmt.Sprintf("%T", el)
	}
}

func formatBox(b flyer.Box) string {
	return fmt.Sprintf("x=%.2f y=%.2f w=%.2f h=%.2f", b.X, b.Y, b.W, b.H)
}

func fontSuffix(style string) string {
	if style == "" {
		return ""
	}
	return "-" + style
}

func imageSource(e flyer.ImageElement) string {
	switch {
	case e.Path != "" && fileExists(e.Path):
		return e.Path
	case len(e.Data) > 0:
		return "generated"
	case e.Path != "":
		return e.Path + " (missing, skipped)"
	default:
		return "none"
	}
}

func resolveWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				return home
			}
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
