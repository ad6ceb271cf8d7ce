package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	qrcode "github.com/goqr/qrencode"
	"github.com/goqr/qrencode/internal/render"
)

var (
	flagECL     string
	flagOut     string
	flagOpen    bool
	flagVerbose bool
	flagScale   int
	flagBorder  int
	flagMask    int
	flagVersion int
)

var textCmd = &cobra.Command{
	Use:   "text <payload>",
	Short: "Encode a text payload into a QR code",
	Args:  cobra.ExactArgs(1),
	RunE:  runText,
}

func init() {
	textCmd.Flags().StringVar(&flagECL, "ecl", "", "error correction level: L, M, Q, or H (default: config or M)")
	textCmd.Flags().StringVar(&flagOut, "out", "", "output file path; extension selects SVG or PNG")
	textCmd.Flags().BoolVar(&flagOpen, "open", false, "open the written file in the default browser")
	textCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug-level logging (per-mask penalty scores are not logged)")
	textCmd.Flags().IntVar(&flagScale, "scale", 0, "pixels per module for PNG output (default: config or 8)")
	textCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet zone width in modules (default: config or 4)")
	textCmd.Flags().IntVar(&flagMask, "mask", -1, "force a mask pattern 0-7 instead of choosing automatically")
	textCmd.Flags().IntVar(&flagVersion, "version", 0, "force a QR code version 1-40 instead of choosing automatically")
}

func runText(cmd *cobra.Command, args []string) error {
	setupLogging(flagVerbose)

	cfg, err := loadConfig(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg)

	ecl, err := parseECL(cfg.ECL)
	if err != nil {
		return err
	}

	payload := args[0]
	opts := []qrcode.Option{}
	if flagMask >= 0 {
		opts = append(opts, qrcode.WithMask(flagMask))
	}
	if flagVersion > 0 {
		opts = append(opts, qrcode.WithVersion(flagVersion))
	}

	q, err := qrcode.Encode(payload, ecl, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("encode failed")
		return err
	}
	logger.Info().
		Int("version", q.Version()).
		Str("ecl", q.ECL().String()).
		Str("mode", q.Mode().String()).
		Int("mask", q.Mask()).
		Msg("encoded")

	return writeOutput(q, cfg)
}

func applyFlagOverrides(cfg *config) {
	if flagECL != "" {
		cfg.ECL = flagECL
	}
	if flagScale > 0 {
		cfg.Scale = flagScale
	}
	if flagBorder >= 0 {
		cfg.Border = flagBorder
	}
	if flagOut != "" {
		cfg.OutputFormat = outputFormatFor(flagOut)
	}
}

func outputFormatFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".png"):
		return "png"
	case strings.HasSuffix(path, ".svg"):
		return "svg"
	default:
		return "svg"
	}
}

func parseECL(s string) (qrcode.ECL, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcode.L, nil
	case "M", "":
		return qrcode.M, nil
	case "Q":
		return qrcode.Q, nil
	case "H":
		return qrcode.H, nil
	default:
		return 0, fmt.Errorf("qrencode: unknown error correction level %q", s)
	}
}

func writeOutput(q *qrcode.QRCode, cfg *config) error {
	if flagOut == "" {
		fmt.Print(render.Terminal(q, cfg.Border))
		return nil
	}

	switch outputFormatFor(flagOut) {
	case "png":
		data, err := render.PNG(q, cfg.Scale, cfg.Border)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagOut, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOut, err)
		}
	default:
		svg, err := render.SVG(q, cfg.Border)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagOut, []byte(svg), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOut, err)
		}
	}

	logger.Info().Str("path", flagOut).Msg("wrote output")

	if flagOpen {
		if err := openInBrowser(flagOut); err != nil {
			logger.Warn().Err(err).Msg("could not open file in browser")
		}
	}

	return nil
}
