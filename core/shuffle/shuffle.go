// Package shuffle produces uniform random permutations of playlist
// tracks.
package shuffle

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"m3ushuffle/model"
)

// NewRand returns a rand source seeded from the OS entropy pool,
// falling back to the wall clock if that read fails. Each run of the
// tool gets a fresh seed; output is intentionally not reproducible.
func NewRand() *rand.Rand {
	var seed int64
	if err := binary.Read(cryptorand.Reader, binary.LittleEndian, &seed); err != nil {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Tracks permutes tracks in place with a Fisher-Yates shuffle, drawing
// from r. Every track keeps its #EXTINF line; only positions change.
// Zero- and one-element slices are left as they are.
func Tracks(tracks []model.Track, r *rand.Rand) {
	for i := len(tracks) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		tracks[i], tracks[j] = tracks[j], tracks[i]
	}
}
