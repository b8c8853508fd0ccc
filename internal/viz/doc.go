// Package viz provides the terminal drawing primitives for the guide.
//
//   - [Canvas]: Braille-based pixel canvas that implements field.Surface
//   - [Shader]: alpha-to-color ramp used to shade canvas cells
//   - Theme selection with 4 built-in color schemes
//   - Panel and heading styles shared by the terminal views
package viz
