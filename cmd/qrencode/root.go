// Command qrencode is a thin demo CLI over the qrcode package: it turns a
// text payload into a QR code symbol and writes it as SVG, PNG, or a
// terminal-friendly block-character dump.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qrencode",
	Short: "Encode text into a QR code",
}

var flagConfig string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrencode/config.yaml)")
	rootCmd.AddCommand(textCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
