// Package seqio opens alignment and sequence input files, decompressing
// transparently. minimap2 output and uploaded FASTA commonly arrive plain,
// gzip-compressed, or BGZF-compressed (samtools bgzip).
package seqio

import (
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading. "-" means stdin. Compression is detected from
// the file signature: BGZF carries the gzip magic with the FEXTRA flag set
// (1f 8b 08 04), plain gzip just the magic; anything else is read as-is.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [4]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if n == 4 && sig[0] == 0x1f && sig[1] == 0x8b {
		if sig[3]&0x04 != 0 {
			bz, err := bgzf.NewReader(fh, 1)
			if err != nil {
				_ = fh.Close()
				return nil, err
			}
			return &multiReadCloser{Reader: bz, closers: []io.Closer{bz, fh}}, nil
		}
		gz, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gz, closers: []io.Closer{gz, fh}}, nil
	}
	return fh, nil
}
