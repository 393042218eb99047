// Package linebuf provides a goroutine-safe buffered line writer that
// batches many small line writes into few large writes on the underlying
// destination.
//
//	f, err := os.Create("out.txt")
//	if err != nil {
//		return err
//	}
//	w := linebuf.NewWriter(f, linebuf.WithMaxLines(500))
//	defer w.Close()
//
//	for _, line := range lines {
//		if err := w.WriteLine(line); err != nil {
//			return err
//		}
//	}
//
// A flush happens when either the line count or the byte size threshold is
// reached, on Flush, and on Close. Close also closes the destination when
// it implements io.Closer.
package linebuf
