package mmtext

import (
	"bytes"
	"io"
)

// Bytes renders the document. Each section is followed by a blank line.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, s := range d.Sections {
		buf.WriteString(SectionOpen)
		buf.WriteString(s.Name)
		buf.WriteString(SectionClose + LF)
		for _, e := range s.Entries {
			buf.WriteString(e.Key)
			buf.WriteString(EmitAssign)
			buf.WriteString(e.Value)
			buf.WriteString(LF)
		}
		buf.WriteString(LF)
	}
	return buf.Bytes()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}
