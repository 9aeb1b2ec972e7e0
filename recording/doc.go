// Package recording records track drawing as inspectable commands.
//
// A Recorder implements ggtrack.Surface. Painters draw onto it exactly as
// they would onto a canvas; the recorder keeps the canvas state (transform
// stack, fill and stroke styles, global alpha, text alignment) and stores
// each primitive in device space. The result is a Recording that can be
// examined command by command or played back onto a Backend.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(700, 40)
//	p.Draw(rec, 700, 40, 10, slots)
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//		fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/ggtrack/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//	if err != nil {
//		return err
//	}
//	if err := r.Playback(b); err != nil {
//		return err
//	}
//	b.(recording.FileBackend).SaveToFile("track.png")
//
// # Coordinates
//
// Transforms are applied while recording. An axis-aligned rectangle stays
// a FillRectCommand; a rectangle drawn under rotation becomes a
// FillPathCommand holding its four corners. Text positions are transformed
// but glyphs are always drawn upright.
package recording
