package utils

import "regexp"

var barcodePattern = regexp.MustCompile(`^\d{8,13}$`)

// CheckBarcodeFormat reports whether s is a plausible EAN/UPC barcode:
// digits only, 8 to 13 of them. This is the only gate before any
// storage or network lookup.
func CheckBarcodeFormat(s string) bool {
	return barcodePattern.MatchString(s)
}
