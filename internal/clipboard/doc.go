// Package clipboard delivers credentials to the system clipboard.
//
// CommandSink shells out to a native clipboard tool, passing a paste loop
// count where the tool supports one so the selection clears itself after a
// few pastes. PortableSink falls back to github.com/atotto/clipboard when no
// tool is on PATH; it cannot limit paste cycles.
package clipboard
