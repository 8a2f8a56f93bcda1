package packing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for paper formats that cannot be parsed or
// have no area.
var ErrInvalidFormat = errors.New("invalid paper format")

const (
	a0Width  = 841
	a0Height = 1189
	maxISOA  = 10

	landscapeSuffix = "-landscape"
)

// Format is a sheet size in millimeters.
type Format struct {
	Name          string
	Width, Height float64
}

// ISOA returns the A<n> format. Each step halves the long side of the
// previous one, floored to the millimeter.
func ISOA(n int) (Format, error) {
	if n < 0 || n > maxISOA {
		return Format{}, fmt.Errorf("A%d: %w", n, ErrInvalidFormat)
	}
	w, h := float64(a0Width), float64(a0Height)
	for i := 0; i < n; i++ {
		w, h = math.Floor(h/2), w
	}
	return Format{Name: fmt.Sprintf("A%d", n), Width: w, Height: h}, nil
}

// ISOASeries returns A0 to A10.
func ISOASeries() []Format {
	out := make([]Format, 0, maxISOA+1)
	for n := 0; n <= maxISOA; n++ {
		f, _ := ISOA(n)
		out = append(out, f)
	}
	return out
}

// ParseFormat accepts "A<n>" or "<width>x<height>" (millimeters), optionally
// followed by "-landscape".
func ParseFormat(s string) (Format, error) {
	name := strings.TrimSpace(s)
	landscape := false
	if strings.HasSuffix(strings.ToLower(name), landscapeSuffix) {
		landscape = true
		name = name[:len(name)-len(landscapeSuffix)]
	}

	var f Format
	switch {
	case name == "":
		return Format{}, fmt.Errorf("empty name: %w", ErrInvalidFormat)
	case name[0] == 'A' || name[0] == 'a':
		n, err := strconv.Atoi(name[1:])
		if err != nil {
			return Format{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
		}
		if f, err = ISOA(n); err != nil {
			return Format{}, err
		}
	default:
		ws, hs, ok := strings.Cut(strings.ToLower(name), "x")
		if !ok {
			return Format{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(ws), 64)
		if err != nil {
			return Format{}, fmt.Errorf("%q width: %w", s, ErrInvalidFormat)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hs), 64)
		if err != nil {
			return Format{}, fmt.Errorf("%q height: %w", s, ErrInvalidFormat)
		}
		f = Format{Name: name, Width: w, Height: h}
	}

	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	if landscape {
		f = f.Landscape()
	}
	return f, nil
}

// Validate rejects formats without area.
func (f Format) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) || math.IsInf(f.Width, 0) || math.IsInf(f.Height, 0) {
		return fmt.Errorf("%s is %gx%g: %w", f.Name, f.Width, f.Height, ErrInvalidFormat)
	}
	return nil
}

// Landscape returns the format with its long side horizontal.
func (f Format) Landscape() Format {
	if f.Width >= f.Height {
		return f
	}
	if !strings.HasSuffix(f.Name, landscapeSuffix) {
		f.Name += landscapeSuffix
	}
	f.Width, f.Height = f.Height, f.Width
	return f
}

func (f Format) Area() float64 {
	return f.Width * f.Height
}

func (f Format) String() string {
	return fmt.Sprintf("%s (%gx%gmm)", f.Name, f.Width, f.Height)
}
