// Package cubeviz models a 3x3x3 twisty puzzle for interactive display.
//
// # Features
//
//   - Cubie-level state: 27 sub-cubes, each carrying its own stickers
//   - Quarter turns of any layer as pure state transitions
//   - A single-flight turn animator that commits atomically at 90 degrees
//   - Per-frame snapshots a renderer can draw without any rotation math
//
// # Quick Start
//
// Drive an engine from a frame loop:
//
//	eng := cubeviz.NewEngine(cubeviz.WithSpeed(360))
//	eng.Command(cubeviz.R)
//
//	for eng.Busy() {
//	    eng.Tick(16 * time.Millisecond)
//	    draw(eng.Frame())
//	}
//
// # Standalone Cube
//
// The Cube type can be used without an engine. Turns return a new cube:
//
//	cube := cubeviz.NewCube()
//	cube = cube.Turn(cubeviz.AxisX, 1, cubeviz.Clockwise)
//	fmt.Println(cube)
//
// # Commands
//
// The six faces U, D, L, R, F and B map to fixed (axis, layer) pairs.
// A command turns clockwise as seen from the positive end of its axis, or
// counter-clockwise when modified (R').
package cubeviz
