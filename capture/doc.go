// Package capture batches encoded messages into a compressed, indexed container and reads
// them back as views.
//
// A Writer accepts raw messages of one schema. Each message is sized with
// visit.SizeBytesChecked before it is copied, so a capture only ever holds messages whose
// headers, groups and data fields fit their declared lengths. Finish compresses the
// payload with the configured codec and lays out header, index and payload as described
// in the section package.
//
// A Reader parses and validates the whole container once. After NewReader succeeds every
// message can be viewed without further checks; with CompressionNone the views alias the
// container bytes directly.
//
// Example:
//
//	w, err := capture.NewWriter(schema, capture.WithCompression(format.CompressionS2))
//	if err != nil {
//		return err
//	}
//	for _, msg := range received {
//		if _, err := w.Append(msg); err != nil {
//			log.Warn().Err(err).Msg("dropping message")
//		}
//	}
//	blob, err := w.Finish()
//
//	r, err := capture.NewReader(blob, schema)
//	for i, m := range r.All() {
//		fmt.Println(i, m.Traits().Name)
//	}
package capture
