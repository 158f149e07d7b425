// Package palette generates the colors and emoji used for mood buttons.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinContrast is the WCAG AA ratio required against white text
const MinContrast = 4.5

const (
	emojiFirst = 0x1F600
	emojiLast  = 0x1F64F
)

// White is the button text color
var White = RGB{255, 255, 255}

// RGB is an sRGB color with 8-bit channels
type RGB struct {
	R, G, B uint8
}

// String renders the color as a CSS rgb() value
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Luminance is the WCAG relative luminance of c
func (c RGB) Luminance() float64 {
	return Luminance(c.R, c.G, c.B)
}

// Luminance is the WCAG relative luminance of an sRGB triple
func Luminance(r, g, b uint8) float64 {
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b)
}

func linear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Contrast is the WCAG contrast ratio between a and b, from 1 to 21
func Contrast(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// RandomColor draws colors until one is readable under white text
func RandomColor(rng *rand.Rand) RGB {
	for {
		c := RGB{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
		if Contrast(c, White) >= MinContrast {
			return c
		}
	}
}

// RandomEmoji picks a face from the Emoticons block
func RandomEmoji(rng *rand.Rand) string {
	return string(rune(emojiFirst + rng.Intn(emojiLast-emojiFirst+1)))
}

// Label upper-cases the first letter of mood
func Label(mood string) string {
	r, size := utf8.DecodeRuneInString(mood)
	if r == utf8.RuneError {
		return mood
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(mood[size:])
	return b.String()
}
