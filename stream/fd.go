package stream

import (
	"io"

	"github.com/conspack-go/conspack/errs"
)

// FD is a raw-descriptor sink/source: it wraps an io.Writer for encoding or
// an io.Reader for decoding, the streaming counterpart of cpk_output_t's/
// cpk_input_t's file-descriptor mode. Unlike Buffer it does not buffer or
// seek; each Write* call issues exactly one underlying Write, and each Read*
// call fills its bytes with io.ReadFull, which may call Read more than once.
type FD struct {
	w   io.Writer
	r   io.Reader
	pos int
	tmp [8]byte
}

// NewFDWriter wraps w as a Sink.
func NewFDWriter(w io.Writer) *FD {
	return &FD{w: w}
}

// NewFDReader wraps r as a Source.
func NewFDReader(r io.Reader) *FD {
	return &FD{r: r}
}

func (f *FD) WriteUint8(v uint8) error {
	f.tmp[0] = v
	_, err := f.w.Write(f.tmp[:1])
	return err
}

func (f *FD) WriteUint16(v uint16) error {
	wireEndian.PutUint16(f.tmp[:2], v)
	_, err := f.w.Write(f.tmp[:2])
	return err
}

func (f *FD) WriteUint32(v uint32) error {
	wireEndian.PutUint32(f.tmp[:4], v)
	_, err := f.w.Write(f.tmp[:4])
	return err
}

func (f *FD) WriteUint64(v uint64) error {
	wireEndian.PutUint64(f.tmp[:8], v)
	_, err := f.w.Write(f.tmp[:8])
	return err
}

func (f *FD) WriteBytes(p []byte) error {
	_, err := f.w.Write(p)
	return err
}

// Pos reports the number of bytes read so far.
func (f *FD) Pos() int {
	return f.pos
}

func (f *FD) readFull(n int) ([]byte, error) {
	buf := f.tmp[:n]
	if _, err := io.ReadFull(f.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errs.ErrUnexpectedEOF
		}
		return nil, err
	}
	f.pos += n
	return buf, nil
}

func (f *FD) ReadUint8() (uint8, error) {
	b, err := f.readFull(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (f *FD) ReadUint16() (uint16, error) {
	b, err := f.readFull(2)
	if err != nil {
		return 0, err
	}
	return wireEndian.Uint16(b), nil
}

func (f *FD) ReadUint32() (uint32, error) {
	b, err := f.readFull(4)
	if err != nil {
		return 0, err
	}
	return wireEndian.Uint32(b), nil
}

func (f *FD) ReadUint64() (uint64, error) {
	b, err := f.readFull(8)
	if err != nil {
		return 0, err
	}
	return wireEndian.Uint64(b), nil
}

// ReadBytes reads exactly n bytes into a freshly allocated slice.
func (f *FD) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(f.r, out); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errs.ErrUnexpectedEOF
		}
		return nil, err
	}
	f.pos += n
	return out, nil
}

var (
	_ Sink   = (*FD)(nil)
	_ Source = (*FD)(nil)
)
