// ABOUTME: amrtool play subcommand
// ABOUTME: Plays an AMR file through the system audio device
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openamr/amr-go/internal/player"
	"github.com/openamr/amr-go/pkg/amr"
	"github.com/openamr/amr-go/pkg/amrnb"
)

var (
	playVolume int
	playFrom   time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play FILE",
	Short: "Play an AMR file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playVolume, "volume", 100, "playback volume (0-100)")
	playCmd.Flags().DurationVar(&playFrom, "from", 0, "start position, e.g. 1m30s")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := amr.OpenFile(ctx, args[0],
		amr.WithStrictTruncation(viper.GetBool("strict")))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.InitDecode(ctx, amrnb.NewDecoder); err != nil {
		return err
	}
	if playFrom > 0 {
		if err := s.Seek(ctx, playFrom); err != nil {
			return err
		}
	}

	out := player.NewOutput()
	out.SetVolume(playVolume)
	return player.Play(ctx, s, out)
}
