// Package anchors repositions floating drawing anchors through row and column edits.
package anchors

import "math"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// EMUPerPixel is the number of EMUs per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUPerPoint is the number of EMUs per typographic point (1/72 inch).
const EMUPerPoint = 12700

// EMUToPixels converts EMU (English Metric Units) to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// PointsToEMU converts a row height in points to EMU.
func PointsToEMU(points float64) int64 {
	return int64(math.Round(points * EMUPerPoint))
}

// ColumnWidthToPixels converts a stored column width (character units,
// padding included) to pixels for the given maximum digit width.
func ColumnWidthToPixels(width float64, maxDigitWidth float64) int {
	if width <= 0 || maxDigitWidth <= 0 {
		return 0
	}
	return int(math.Trunc(((256*width + math.Trunc(128/maxDigitWidth)) / 256) * maxDigitWidth))
}

// ColumnWidthToEMU converts a stored column width to EMU.
func ColumnWidthToEMU(width float64, maxDigitWidth float64) int64 {
	return int64(ColumnWidthToPixels(width, maxDigitWidth)) * EMUPerPixel
}
