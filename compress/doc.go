// Package compress provides the payload codecs of a capture container.
//
// A capture stores the encoded messages of a batch back to back and compresses them as one
// payload. Message bodies of a single schema repeat their layout and most of their
// constant fields, so general purpose block codecs compress them well:
//
//   - None: payload stored as is, views alias the container directly
//   - Zstd: best ratio, for archived captures
//   - S2: fast, for captures written on the hot path
//   - LZ4: fastest decompression, for captures replayed repeatedly
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with cgo and the
// gozstd tag switches to github.com/valyala/gozstd.
//
// All codecs are safe for concurrent use. Encoders and decoders are pooled.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
