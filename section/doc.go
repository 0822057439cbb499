// Package section defines the fixed binary structures of a capture container.
//
// A capture is a batch of encoded messages stored in one blob together with an index that
// locates each message. This package owns the byte level layout of the blob header, its
// packed flag and the index entries; the capture package assembles them.
//
// # Capture Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, byte order, compression       │
//	│  - SchemaID, SchemaVersion (4 bytes)                    │
//	│  - CreatedAt (8 bytes)                                  │
//	│  - MessageCount (4 bytes)                               │
//	│  - Offsets (8 bytes): index, payload                    │
//	│  - PayloadSize (4 bytes): uncompressed payload size     │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (N × 16 bytes, fixed per entry)                   │
//	│  - TemplateID, SchemaID, Version, BlockLength           │
//	│  - Offset and Size inside the uncompressed payload      │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable, compressed as one block)             │
//	│  - Encoded messages back to back                        │
//	└─────────────────────────────────────────────────────────┘
//
// The flag's first two bytes are always little-endian so the byte order of the rest of the
// blob can be read before anything else. Every other field uses the byte order the flag
// selects, which is also the byte order of the captured messages.
//
// # Index Entries
//
// Index entries copy the identity of each message from its header. A reader can filter a
// capture by template id without decompressing the payload, and can check that the
// message header it finds at Offset agrees with the index.
package section
