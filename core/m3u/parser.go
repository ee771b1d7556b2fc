// Package m3u reads and writes extended m3u playlists. Only the
// #EXTM3U header and #EXTINF metadata lines are interpreted; every
// other non-blank line passes through untouched as a track location.
package m3u

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"m3ushuffle/logger"
	"m3ushuffle/model"
)

const (
	// HeaderMarker opens every extended m3u file.
	HeaderMarker = "#EXTM3U"
	// ExtinfMarker introduces the metadata line of a track.
	ExtinfMarker = "#EXTINF"
)

var (
	// ErrEmptyInput is returned when the input contains no lines at all.
	ErrEmptyInput = errors.New("cannot read empty input")
	// ErrMissingHeader is returned when the first line does not start
	// with the #EXTM3U marker.
	ErrMissingHeader = errors.New("missing #EXTM3U header")
)

// Parse reads an extended m3u playlist from r. The first line must
// start with #EXTM3U. An #EXTINF line is attached to the next track
// location; blank lines are dropped. Any other non-blank line,
// including directives this tool does not recognize, is kept verbatim
// as a track location. A trailing #EXTINF with no location after it is
// dropped.
func Parse(r io.Reader) (*model.Playlist, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return nil, ErrEmptyInput
	}
	if !strings.HasPrefix(scanner.Text(), HeaderMarker) {
		return nil, ErrMissingHeader
	}

	playlist := &model.Playlist{}
	var extinf string

	for scanner.Scan() {
		line := scanner.Text() // scanner already strips \n and \r\n
		switch {
		case strings.TrimSpace(line) == "":
			continue
		case strings.HasPrefix(line, ExtinfMarker):
			extinf = line
		default:
			playlist.Tracks = append(playlist.Tracks, model.Track{
				Extinf:   extinf,
				Location: line,
			})
			extinf = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if extinf != "" {
		logger.Warn("dropping #EXTINF with no location line after it",
			logger.String("extinf", extinf))
	}

	return playlist, nil
}
