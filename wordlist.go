package gridword

import (
	"bufio"
	"io"
	"log"
	"os"
)

// MaxTokenLen is the maximum word-list token length this reader
// recognizes, matching the reference dictionary loader's fixed 511-byte
// read buffer. Longer tokens are truncated rather than rejected outright;
// a truncated token is still longer than MaxWordLen, so DawgBuilder.Add
// drops it.
const MaxTokenLen = 511

// BuildFromPath opens path, tokenizes it as whitespace-delimited words, and
// builds a Dawg from it (see BuildFromReader). If the file cannot be
// opened, it logs a diagnostic and returns a Dawg built from zero words.
func BuildFromPath(path string) (*Dawg, int) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("gridword: could not open %q for read: %v", path, err)
		return NewDawgBuilder(8192).Publish(), 0
	}
	defer f.Close()
	return BuildFromReader(f)
}

// BuildFromReader tokenizes r as whitespace-delimited words (one word per
// token, expected to already be in strict lexicographic, all-lowercase
// order) and feeds each token through a DawgBuilder, then finalizes and
// publishes it. It returns the finalized Dawg and the number of words
// accepted; tokens rejected by DawgBuilder.Add (bad characters, too long,
// out of order) are skipped here. Add itself logs a diagnostic only for an
// out-of-order token; the other rejections are silent.
func BuildFromReader(r io.Reader) (*Dawg, int) {
	builder := NewDawgBuilder(8192)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	// The scan buffer itself is sized generously; truncation to
	// MaxTokenLen happens explicitly below so that an overlong token is
	// truncated (then rejected by DawgBuilder.Add) rather than aborting the
	// whole scan with bufio.ErrTooLong. A token longer than the 64 KiB
	// maximum buffer still ends the scan at that point.
	scanner.Buffer(make([]byte, 4096), 64*1024)

	accepted := 0
	for scanner.Scan() {
		token := scanner.Bytes()
		if len(token) > MaxTokenLen {
			token = token[:MaxTokenLen]
		}
		if builder.Add(token) {
			accepted++
		}
	}
	builder.Finalize()
	return builder.Publish(), accepted
}
