// Package colorful holds the colour model used throughout chromatic.
//
// A Color is an sRGB triple with channels nominally in [0..1]. Conversions to
// and from HSV, HSL, linear RGB, CIE XYZ, xyY, L*a*b*, L*u*v*, HCL, LuvLCh,
// HSLuv and HPLuv are pure functions; values outside the RGB gamut are kept
// as they are, so call Clamped when a displayable colour is required.
//
// White-point dependent conversions come in pairs: Lab uses D65, LabWhiteRef
// takes the reference white explicitly.
package colorful
