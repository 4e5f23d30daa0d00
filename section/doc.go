// Package section defines the binary layout of column blobs.
//
// A column blob stores many stringlet records of one configuration:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, options, kind, compression    │
//	│  - Capacity (1 byte)                                    │
//	│  - Count, PayloadSize (8 bytes)                         │
//	│  - Checksum (8 bytes): xxHash64 of the payload          │
//	│  - StoredSize (4 bytes)                                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (StoredSize bytes, possibly compressed)         │
//	│  - Count records of Config.Stride() bytes each          │
//	└─────────────────────────────────────────────────────────┘
//
// Records have a fixed stride, so record i of the uncompressed payload starts
// at i*stride and needs no index.
//
// Multi-byte header fields follow the byte order selected by the endianness
// bit. The Options field itself is always little-endian.
package section
