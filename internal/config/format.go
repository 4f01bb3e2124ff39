package config

import "fmt"

// Format enumerates the camera pixel formats the rig can capture in. It
// is stored in the tree as a plain int setting.
type Format int

const (
	FormatGray Format = iota
	FormatBayer
	FormatRGB
)

func (f Format) String() string {
	switch f {
	case FormatGray:
		return "gray"
	case FormatBayer:
		return "bayer"
	case FormatRGB:
		return "rgb"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Depth returns the byte depth of one pixel in the format.
func (f Format) Depth() int {
	if f == FormatRGB {
		return 3
	}
	return 1
}
