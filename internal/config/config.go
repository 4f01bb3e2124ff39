// Package config defines the rig's settings tree: named groups of typed
// settings with their factory defaults, plus the fixed traversal order
// persistence and the menu rely on.
package config

import "github.com/joeri-hu/tracktune/internal/setting"

// Screen holds the application window settings.
type Screen struct {
	Width  *setting.Setting
	Height *setting.Setting
	Rate   *setting.Setting
}

// Serial holds the serial link to the paddle controller.
type Serial struct {
	Enabled  *setting.Setting
	DeviceID *setting.Setting
	Baudrate *setting.Setting
}

// PID holds the paddle controller gains.
type PID struct {
	Kp *setting.Setting
	Ki *setting.Setting
	Kd *setting.Setting
}

// Range is a min/max pair.
type Range struct {
	Min *setting.Setting
	Max *setting.Setting
}

// Vision holds the ball-tracking settings.
type Vision struct {
	DisplayDebug *setting.Setting
	TrackBall    *setting.Setting
	BallRadius   Range
}

// Frame holds the capture frame geometry.
type Frame struct {
	Width  *setting.Setting
	Height *setting.Setting
	Rate   *setting.Setting
}

// Size returns the byte size of one captured frame at the given pixel
// depth.
func (f Frame) Size(depth int) int {
	return depth * setting.MustGet[int](f.Width) * setting.MustGet[int](f.Height)
}

// Balance holds the camera color balance.
type Balance struct {
	Red       *setting.Setting
	Green     *setting.Setting
	Blue      *setting.Setting
	AutoWhite *setting.Setting
}

// Camera holds the camera settings.
type Camera struct {
	Frame      Frame
	Balance    Balance
	Format     *setting.Setting
	Exposure   *setting.Setting
	Sharpness  *setting.Setting
	Contrast   *setting.Setting
	Brightness *setting.Setting
	Hue        *setting.Setting
	Gain       *setting.Setting
	AutoGain   *setting.Setting
}

// Config is the full settings tree of the rig. It owns every setting for
// the process lifetime; menus and stores only borrow them.
type Config struct {
	Screen Screen
	Serial Serial
	PID    PID
	Vision Vision
	Camera Camera
}

// Defaults returns the settings tree with factory values.
func Defaults() *Config {
	return &Config{
		Screen: Screen{
			Width:  setting.New("screen width", 800),
			Height: setting.New("screen height", 600),
			Rate:   setting.New("screen rate", 60),
		},
		Serial: Serial{
			Enabled:  setting.New("serial enabled", true),
			DeviceID: setting.New("device id", 0),
			Baudrate: setting.New("baudrate", 115200),
		},
		PID: PID{
			Kp: setting.New("proportional", 0.3),
			Ki: setting.New("integral", 0.001),
			Kd: setting.New("derivative", 5.0),
		},
		Vision: Vision{
			DisplayDebug: setting.New("display debug", true),
			TrackBall:    setting.New("ball tracking", true),
			BallRadius: Range{
				Min: setting.New("min. ball radius", 5),
				Max: setting.New("max. ball radius", 75),
			},
		},
		Camera: Camera{
			Frame: Frame{
				Width:  setting.New("frame width", 640),
				Height: setting.New("frame height", 480),
				Rate:   setting.New("frame rate", 60),
			},
			Balance: Balance{
				Red:       setting.New("red balance", uint8(128)),
				Green:     setting.New("green balance", uint8(128)),
				Blue:      setting.New("blue balance", uint8(128)),
				AutoWhite: setting.New("auto white bal.", false),
			},
			Format:     setting.New("color format", int(FormatGray)),
			Exposure:   setting.New("exposure", uint8(20)),
			Sharpness:  setting.New("sharpness", uint8(128)),
			Contrast:   setting.New("contrast", uint8(128)),
			Brightness: setting.New("brightness", uint8(128)),
			Hue:        setting.New("hue", uint8(128)),
			Gain:       setting.New("gain", uint8(20)),
			AutoGain:   setting.New("auto gain", false),
		},
	}
}

// Items returns every setting in the tree in its fixed persistence and
// display order. The order is part of the on-disk contract; append, never
// reorder.
func (c *Config) Items() []*setting.Setting {
	return []*setting.Setting{
		c.Screen.Width,
		c.Screen.Height,
		c.Screen.Rate,
		c.Serial.Enabled,
		c.Serial.DeviceID,
		c.Serial.Baudrate,
		c.PID.Kp,
		c.PID.Ki,
		c.PID.Kd,
		c.Vision.DisplayDebug,
		c.Vision.TrackBall,
		c.Vision.BallRadius.Min,
		c.Vision.BallRadius.Max,
		c.Camera.Frame.Width,
		c.Camera.Frame.Height,
		c.Camera.Frame.Rate,
		c.Camera.Balance.Red,
		c.Camera.Balance.Blue,
		c.Camera.Balance.Green,
		c.Camera.Balance.AutoWhite,
		c.Camera.Format,
		c.Camera.Exposure,
		c.Camera.Sharpness,
		c.Camera.Contrast,
		c.Camera.Brightness,
		c.Camera.Hue,
		c.Camera.Gain,
		c.Camera.AutoGain,
	}
}

// Equal compares two settings trees item by item.
func (c *Config) Equal(o *Config) bool {
	a, b := c.Items(), o.Items()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
