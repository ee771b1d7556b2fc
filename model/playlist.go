package model

// Track represents a single playlist entry: an optional #EXTINF
// metadata line and the media location it describes. The two lines
// move together through any reordering of the playlist.
type Track struct {
	Extinf   string // raw #EXTINF line, empty when the entry carries no metadata
	Location string // media path or URL, exactly as it appeared in the input
}

// HasExtinf reports whether the track carries a metadata line.
func (t Track) HasExtinf() bool {
	return t.Extinf != ""
}

// Playlist is the parsed form of an extended m3u file. A Playlist only
// exists after the #EXTM3U header was seen, so serialization always
// emits the header first.
type Playlist struct {
	Tracks []Track
}

// Len returns the number of tracks in the playlist.
func (p *Playlist) Len() int {
	return len(p.Tracks)
}
