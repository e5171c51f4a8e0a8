package models

import "image"

const (
	WatermarkWidth        = 200
	WatermarkHeight       = 150
	WatermarkBottomMargin = 20
	BlurSigma             = 3.0
)

// WatermarkArea is the rectangle (X1,Y1)-(X2,Y2) that gets overwritten.
type WatermarkArea struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// BottomLeftArea returns the area anchored at the bottom-left corner of an
// image of the given height. The bottom margin is part of the area.
func BottomLeftArea(height int) WatermarkArea {
	return WatermarkArea{
		X1: 0,
		Y1: height - WatermarkHeight - WatermarkBottomMargin,
		X2: WatermarkWidth,
		Y2: height,
	}
}

func (a WatermarkArea) Width() int {
	return a.X2 - a.X1
}

func (a WatermarkArea) Height() int {
	return a.Y2 - a.Y1
}

func (a WatermarkArea) Rect() image.Rectangle {
	return image.Rect(a.X1, a.Y1, a.X2, a.Y2)
}

// Shift moves the area horizontally by dx pixels.
func (a WatermarkArea) Shift(dx int) WatermarkArea {
	return WatermarkArea{X1: a.X1 + dx, Y1: a.Y1, X2: a.X2 + dx, Y2: a.Y2}
}
