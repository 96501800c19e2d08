package glplotter

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width in screen coordinates",
		Value: DefaultConfig().Width,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height in screen coordinates",
		Value: DefaultConfig().Height,
	}
	titleFlag = &cli.StringFlag{
		Name:  "title",
		Usage: "window title",
		Value: DefaultConfig().Title,
	}
	clearColorFlag = &cli.StringFlag{
		Name:  "clear-color",
		Usage: "background color: name, #rrggbb[aa] or r,g,b[,a]",
		Value: DefaultConfig().ClearColor.String(),
	}
	vsyncFlag = &cli.BoolFlag{
		Name:  "vsync",
		Usage: "wait for vertical sync when swapping buffers",
		Value: DefaultConfig().VSync,
	}
	framesFlag = &cli.IntFlag{
		Name:  "frames",
		Usage: "close the window after this many frames (0 = run until closed)",
	}
	screenshotFlag = &cli.StringFlag{
		Name:  "screenshot",
		Usage: "write the first frame to this PNG file",
	}
	hiddenFlag = &cli.BoolFlag{
		Name:  "hidden",
		Usage: "create the window without showing it",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level: 0=silent, 1=error, 2=warn, 3=info, 4=debug",
		Value: 2,
	}
)

// Flags are the command line options understood by ConfigFromCLI and
// LoggerFromCLI.
var Flags = []cli.Flag{
	configFlag,
	widthFlag,
	heightFlag,
	titleFlag,
	clearColorFlag,
	vsyncFlag,
	framesFlag,
	screenshotFlag,
	hiddenFlag,
	verbosityFlag,
}

// ConfigFromCLI layers the config file, if any, over the defaults and then
// the flags the user set explicitly over both.
func ConfigFromCLI(ctx *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := LoadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(titleFlag.Name) {
		cfg.Title = ctx.String(titleFlag.Name)
	}
	if ctx.IsSet(clearColorFlag.Name) {
		c, err := ParseColor(ctx.String(clearColorFlag.Name))
		if err != nil {
			return cfg, err
		}
		cfg.ClearColor = c
	}
	if ctx.IsSet(vsyncFlag.Name) {
		cfg.VSync = ctx.Bool(vsyncFlag.Name)
	}
	if ctx.IsSet(framesFlag.Name) {
		cfg.Frames = ctx.Int(framesFlag.Name)
	}
	if ctx.IsSet(screenshotFlag.Name) {
		cfg.Screenshot = ctx.String(screenshotFlag.Name)
	}
	if ctx.IsSet(hiddenFlag.Name) {
		cfg.Hidden = ctx.Bool(hiddenFlag.Name)
	}
	return cfg, cfg.Validate()
}

// LoggerFromCLI installs a text logger writing to w at the level picked by
// --verbosity. Zero silences logging.
func LoggerFromCLI(ctx *cli.Context, w io.Writer) {
	verbosity := ctx.Int(verbosityFlag.Name)
	if verbosity <= 0 {
		SetLogger(nil)
		return
	}
	level := slog.LevelError
	switch verbosity {
	case 1:
	case 2:
		level = slog.LevelWarn
	case 3:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
