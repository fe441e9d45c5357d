// ABOUTME: amrtool info subcommand
// ABOUTME: Probes a file and prints its stream metadata
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openamr/amr-go/pkg/amr"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print stream metadata of an AMR file",
	Long: `Probes FILE for the AMR-NB magic and, if it matches, scans the
whole stream to count its frames and prints duration, bitrate and format
details.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := amr.OpenFile(ctx, args[0],
		amr.WithStrictTruncation(viper.GetBool("strict")))
	if err != nil {
		return err
	}
	defer s.Close()

	info := s.Info()
	fmt.Printf("codec:           %s\n", info.Codec)
	fmt.Printf("duration:        %s\n", info.Duration)
	fmt.Printf("frames:          %d\n", info.Frames)
	fmt.Printf("sample rate:     %d Hz\n", info.SampleRate)
	fmt.Printf("channels:        %d\n", info.Channels)
	fmt.Printf("bits per sample: %d (decodes to 16-bit PCM)\n", info.BitsPerSample)
	fmt.Printf("bitrate:         %d kbit/s\n", info.Bitrate)
	fmt.Printf("seekable:        %v\n", s.CanSeek())
	return nil
}
