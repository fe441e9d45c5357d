// ABOUTME: Root cobra command for amrtool
// ABOUTME: Wires global flags, viper config and slog setup
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "amrtool",
	Short: "Inspect, convert and play AMR-NB speech files",
	Long: `amrtool works with AMR-NB (Adaptive Multirate narrowband) speech
files, the "#!AMR" containers produced by most mobile voice recorders.

The container carries no frame index, so every command scans the stream
frame by frame. Decoding (convert, play) is done through the system
opencore-amrnb library.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(setupLogging)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on truncated trailing frames")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))

	viper.SetEnvPrefix("amrtool")
	viper.AutomaticEnv()
}

func setupLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
