package section

const (
	// Bit masks of the packed Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicKeyV1 = 0xB510 // MagicKeyV1 is the version 1 magic number of self-describing keys.
	MagicSetV1 = 0xB520 // MagicSetV1 is the version 1 magic number of ID set blobs.
)

// sizes in bytes
const (
	KeyHeaderSize = 8  // fixed self-describing key header size
	SetHeaderSize = 16 // fixed ID set blob header size
	SetEntryFixed = 2  // bit length prefix of every set entry
)
