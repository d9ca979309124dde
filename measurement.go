package pptgeom

// emuPerInch is the DrawingML extent unit: 1 inch = 914400 EMU.
const emuPerInch = 914400

// DefaultDPI is the screen resolution boxes are converted at when none is given.
const DefaultDPI = 96

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// EMUToPixel converts EMU to device pixels at dpi (DefaultDPI when dpi <= 0).
func EMUToPixel(emu int64, dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return EMUToInch(emu) * dpi
}

// BoxFromEMU converts a shape extent (a:ext cx, cy) into a device-unit box.
func BoxFromEMU(cx, cy int64, dpi float64) BoundingBox {
	return BoundingBox{W: EMUToPixel(cx, dpi), H: EMUToPixel(cy, dpi)}
}
