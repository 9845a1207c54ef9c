// Command sixtyfive assembles MOS 6502 source files into a raw binary
// image.
package main

import (
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mricon/sixtyfive/asm"
)

func main() {
	app := &cli.App{
		Name:      "sixtyfive",
		Usage:     "assemble MOS 6502 source files into a raw binary image",
		ArgsUsage: "file [file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "a.out",
				Usage:   "output file",
			},
			&cli.BoolFlag{
				Name:    "disc",
				Aliases: []string{"d"},
				Usage:   "emit the full 64KiB image with no address header",
			},
			&cli.StringFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "override start address (16-bit hex)",
			},
			&cli.StringFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "override end address (16-bit hex)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace each pipeline stage to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sixtyfive: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	files := dedupFiles(c.Args().Slice())
	if len(files) == 0 {
		return cli.Exit("usage: sixtyfive [options] file [file...]", 1)
	}

	log := newLogger(c.Bool("verbose"))
	defer log.Sync() //nolint:errcheck

	verbose := c.Bool("verbose")

	target := asm.NewOutputImage()
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		img, err := asm.Assemble(path, string(src), log.Sugar())
		if err != nil {
			printDiagnostic(os.Stderr, err, verbose)
			return cli.Exit("", 1)
		}

		if err := asm.Merge(target, img); err != nil {
			printDiagnostic(os.Stderr, err, verbose)
			return cli.Exit("", 1)
		}
	}

	disc := c.Bool("disc")

	start, end := target.Start, target.End
	if s := c.String("start"); s != "" {
		v, err := parseHexWord(s)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid -s value %q", s), 1)
		}
		start = v
	}
	if e := c.String("end"); e != "" {
		v, err := parseHexWord(e)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid -e value %q", e), 1)
		}
		end = v
	}
	if disc {
		start, end = 0x0000, 0xFFFF
	}

	out, err := renderOutput(target, start, end, disc)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := os.WriteFile(c.String("output"), out, 0644); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// printDiagnostic writes a single diagnostic line to w, per spec:
// "{filename}:{line}: {message}". Under -v it additionally echoes the
// offending source line with a caret under the error's column.
func printDiagnostic(w io.Writer, err error, verbose bool) {
	fmt.Fprintln(w, err.Error())
	if !verbose {
		return
	}
	if ae, ok := err.(*asm.Error); ok {
		if detail := ae.Detail(); detail != "" {
			fmt.Fprintln(w, detail)
		}
	}
}

func dedupFiles(args []string) []string {
	seen := make(map[string]bool, len(args))
	var out []string
	for _, a := range args {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// hexit converts a single hex digit character to its value, the same
// byte-at-a-time approach as the teacher's asm/util.go hexchar, but
// reporting an invalid digit instead of silently defaulting to zero.
func hexit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseHexWord parses a 1-4 digit hex string into a 16-bit address,
// accumulating nibble by nibble via hexit rather than deferring to
// strconv, matching the teacher's hexToByte.
func parseHexWord(s string) (uint16, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, fmt.Errorf("not a 16-bit hex value: %q", s)
	}
	var v uint16
	for i := 0; i < len(s); i++ {
		d, ok := hexit(s[i])
		if !ok {
			return 0, fmt.Errorf("not a 16-bit hex value: %q", s)
		}
		v = v<<4 | uint16(d)
	}
	return v, nil
}

// renderOutput formats the final image per spec: a raw 64KiB canvas
// under -d (no header), otherwise a little-endian start-address header
// followed by the written range, or exactly two zero bytes when nothing
// was ever written.
func renderOutput(img *asm.Image, start, end uint16, disc bool) ([]byte, error) {
	if disc {
		return img.Bytes[:], nil
	}
	if img.Empty() {
		return []byte{0x00, 0x00}, nil
	}

	out := []byte{byte(start), byte(start >> 8)}
	for addr := int(start); addr <= int(end); addr++ {
		out = append(out, img.Bytes[addr])
	}
	return out, nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
