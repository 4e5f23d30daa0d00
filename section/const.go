package section

import "math"

const (
	// Bit masks of ColumnFlag.Options
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0), 0=little, 1=big
	ChecksumMask     = 0x0002 // Mask for payload checksum bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicColumnV1Opt = 0xEC10 // MagicColumnV1Opt is the version 1 magic number of the column format.
)

// offsets and section sizes in the column blob
const (
	HeaderSize     = 32             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the record payload starts
	MaxRecordCount = math.MaxUint32 // maximum number of records in one column
	MaxPayloadSize = math.MaxUint32 // maximum uncompressed payload size in bytes
)
