package m3u

import (
	"bufio"
	"io"

	"m3ushuffle/model"
)

// Write renders the playlist to w: the #EXTM3U header first, then for
// each track its #EXTINF line (when present) followed by its location.
// Line content is written byte-for-byte as parsed; every line is
// terminated with \n regardless of the input's line endings.
func Write(w io.Writer, playlist *model.Playlist) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(HeaderMarker + "\n"); err != nil {
		return err
	}
	for _, track := range playlist.Tracks {
		if track.HasExtinf() {
			if _, err := bw.WriteString(track.Extinf + "\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(track.Location + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
