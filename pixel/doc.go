// Package pixel converts images to the RGB565 format of TFT display controllers.
//
// RGB is an 8-bit per channel image that can be rotated in quarter turns and packed into
// RGB565 bytes. CRGB16 is the matching [color.Color] with its [color.Model].
package pixel
