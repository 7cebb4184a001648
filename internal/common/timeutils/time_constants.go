package timeutils

// LayoutDisplayDE renders dd.mm.yy, hh:mm:ss like the de-DE locale with
// two-digit components.
const LayoutDisplayDE = "02.01.06, 15:04:05"
