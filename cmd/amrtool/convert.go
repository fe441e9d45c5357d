// ABOUTME: amrtool convert subcommand
// ABOUTME: Decodes an AMR file into a 16-bit PCM WAV file
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openamr/amr-go/internal/player"
	"github.com/openamr/amr-go/internal/wavwriter"
	"github.com/openamr/amr-go/pkg/amr"
	"github.com/openamr/amr-go/pkg/amrnb"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE [OUT.wav]",
	Short: "Decode an AMR file to WAV",
	Long: `Decodes every frame of FILE through opencore-amrnb and writes the
result as a 16-bit 8 kHz mono WAV file. The output name defaults to the
input name with a .wav extension.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := args[0]
	out := strings.TrimSuffix(in, ".amr") + ".wav"
	if len(args) == 2 {
		out = args[1]
	}

	s, err := amr.OpenFile(ctx, in,
		amr.WithStrictTruncation(viper.GetBool("strict")))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.InitDecode(ctx, amrnb.NewDecoder); err != nil {
		return err
	}

	w, err := wavwriter.New(out)
	if err != nil {
		return err
	}
	// Eager init: a zero-frame stream must still come out as a valid,
	// empty WAV file.
	if err := w.Initialize(amr.PCMFormat()); err != nil {
		os.Remove(out)
		return err
	}

	slog.Info("converting", "in", in, "out", out, "duration", s.Info().Duration)
	if err := player.Play(ctx, s, w); err != nil {
		os.Remove(out)
		return err
	}
	fmt.Printf("wrote %s (%s)\n", out, s.Info().Duration)
	return nil
}
