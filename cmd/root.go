package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"m3ushuffle/config"
	"m3ushuffle/core/m3u"
	"m3ushuffle/core/shuffle"
	"m3ushuffle/logger"
	"m3ushuffle/model"
)

// version is set during build via -ldflags "-X m3ushuffle/cmd.version=X.Y.Z".
var version = "dev"

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "m3ushuffle [file]",
	Short: "Shuffle the entries of an extended m3u playlist.",
	Long: `m3ushuffle reads an extended m3u playlist, randomly reorders its
entries and writes the result. If no file is given, the playlist is
read from stdin; without -o, the shuffled playlist goes to stdout.

Each #EXTINF line stays attached to the location line that follows it,
so entries move as a whole. The input must start with the #EXTM3U
header. Blank lines are dropped; every other line is kept verbatim.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if verbose {
			cfg.LogLevel = string(logger.DebugLevel)
		}
		logger.Init(logger.Config{
			Level:      logger.LogLevel(cfg.LogLevel),
			OutputPath: cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		})

		var inputPath string
		if len(args) == 1 {
			inputPath = args[0]
		}
		return run(inputPath, outputPath)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the shuffled playlist to this file instead of stdout")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"enable debug logging on stderr")
	rootCmd.Flags().BoolP("version", "V", false,
		"print the version and exit")
}

// run reads and parses the whole input before the output path is
// opened, so -o pointing at the input file can never truncate data
// that is still being read.
func run(inputPath, outputPath string) error {
	playlist, err := readPlaylist(inputPath)
	if err != nil {
		return err
	}

	shuffle.Tracks(playlist.Tracks, shuffle.NewRand())
	logger.Debug("shuffled playlist", logger.Int("tracks", playlist.Len()))

	return writePlaylist(outputPath, playlist)
}

// readPlaylist parses the playlist at path, or stdin when path is
// empty. The input handle is closed before readPlaylist returns.
func readPlaylist(path string) (*model.Playlist, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open file to read from '%s': %w", path, err)
		}
		defer f.Close()
		r = f
	}

	playlist, err := m3u.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse m3u file: %w", err)
	}
	return playlist, nil
}

// writePlaylist renders the playlist to path, or stdout when path is
// empty.
func writePlaylist(path string, playlist *model.Playlist) error {
	if path == "" {
		return m3u.Write(os.Stdout, playlist)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to open file to write to '%s': %w", path, err)
	}
	if err := m3u.Write(f, playlist); err != nil {
		f.Close()
		return fmt.Errorf("unable to write to '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to write to '%s': %w", path, err)
	}
	return nil
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("run failed", logger.ErrorField(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
