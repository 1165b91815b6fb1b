package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"sync"
)

const iconSize = 32

var (
	iconOnce sync.Once
	iconData []byte
)

// Icon returns the tray icon: PNG data, wrapped in an ICO container on
// Windows.
func Icon() []byte {
	iconOnce.Do(func() {
		data := drawIcon()
		if runtime.GOOS == "windows" {
			data = wrapICO(data, iconSize)
		}
		iconData = data
	})
	return iconData
}

// drawIcon paints a pad outline with four face buttons.
func drawIcon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	body := color.NRGBA{0x37, 0x3b, 0x41, 0xff}
	face := color.NRGBA{0x81, 0xa2, 0xbe, 0xff}

	for y := 8; y < 24; y++ {
		for x := 2; x < 30; x++ {
			img.Set(x, y, body)
		}
	}
	for _, c := range [][2]int{{23, 11}, {23, 19}, {19, 15}, {27, 15}} {
		fillDot(img, c[0], c[1], face)
	}
	for i := 6; i < 13; i++ {
		img.Set(i, 15, face)
		img.Set(9, i+3, face)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func fillDot(img *image.NRGBA, cx, cy int, c color.NRGBA) {
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			img.Set(x, y, c)
		}
	}
}

// wrapICO stores a PNG image as the single entry of an ICO file.
func wrapICO(pngData []byte, size int) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian
	_ = binary.Write(&buf, le, [3]uint16{0, 1, 1})
	buf.WriteByte(byte(size))
	buf.WriteByte(byte(size))
	buf.WriteByte(0)
	buf.WriteByte(0)
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(32))
	_ = binary.Write(&buf, le, uint32(len(pngData)))
	_ = binary.Write(&buf, le, uint32(6+16))
	buf.Write(pngData)
	return buf.Bytes()
}
