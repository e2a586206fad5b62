// Package render turns sim cell buffers into pixels or text for hosts.
package render

import (
	"image/color"
	"io"
)

// FillBinaryRGBA converts binary cell data into RGBA pixels in buf. Any
// non-zero cell uses on. buf must hold 4 bytes per cell.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to the cell drawn there at the given scale.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// WriteText prints cells as rows of on/off runes, one line per row.
func WriteText(w io.Writer, cells []uint8, width int, on, off rune) error {
	if width <= 0 {
		return nil
	}
	line := make([]rune, 0, width+1)
	for i := 0; i < len(cells); i += width {
		line = line[:0]
		end := min(i+width, len(cells))
		for _, c := range cells[i:end] {
			if c != 0 {
				line = append(line, on)
			} else {
				line = append(line, off)
			}
		}
		line = append(line, '\n')
		if _, err := io.WriteString(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}
