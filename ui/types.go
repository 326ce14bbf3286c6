// Package ui draws the heads-up display and the raygui control panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg         rl.Color
	PanelBorder     rl.Color
	SectionHeader   rl.Color
	TextColor       rl.Color
	HintColor       rl.Color
	LabelColor      rl.Color
	ValueColor      rl.Color
	BarBg           rl.Color
	BarFillNegative rl.Color
	BarFillPositive rl.Color
	Padding         int32
	LineHeight      int32
	LabelWidth      int32
	BarHeight       int32
	FontSize        int32
	HeaderFontSize  int32
	HUDFontSize     int32
}

// DefaultTheme returns the default UI theme, tuned for a white background.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:         rl.Color{R: 245, G: 245, B: 245, A: 230},
		PanelBorder:     rl.Color{R: 180, G: 180, B: 180, A: 255},
		SectionHeader:   rl.DarkBlue,
		TextColor:       rl.Black,
		HintColor:       rl.Gray,
		LabelColor:      rl.DarkGray,
		ValueColor:      rl.Black,
		BarBg:           rl.Color{R: 220, G: 220, B: 220, A: 255},
		BarFillNegative: rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillPositive: rl.Color{R: 100, G: 170, B: 100, A: 255},
		Padding:         10,
		LineHeight:      18,
		LabelWidth:      90,
		BarHeight:       12,
		FontSize:        14,
		HeaderFontSize:  16,
		HUDFontSize:     20,
	}
}
