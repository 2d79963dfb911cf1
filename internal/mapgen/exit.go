package mapgen

// ExitBits is a bitset of the directions a node connects to in the row
// above it, ported from sim/src/map/exit.rs's bitflags. The numeric values
// match the reference exactly (Left=0b100, Up=0b010, Right=0b001) since
// exitBitsAsVec/exitBitsAsBase64 expose these raw bytes to callers and test
// vectors compare against them directly.
type ExitBits uint8

const (
	ExitRight  ExitBits = 0b001
	ExitUp     ExitBits = 0b010
	ExitLeft   ExitBits = 0b100
	exitsEmpty ExitBits = 0
)

// Has reports whether the bitset contains every bit of other.
func (e ExitBits) Has(other ExitBits) bool {
	return e&other == other
}

// glyph renders the ASCII-art edge segment for a single node's exits, ported
// verbatim from sim/src/map/exit.rs's Display impl.
func (e ExitBits) glyph() string {
	switch e {
	case 0b001:
		return "  /"
	case 0b010:
		return " | "
	case 0b011:
		return " |/"
	case 0b100:
		return `\  `
	case 0b101:
		return `\ /`
	case 0b110:
		return `\| `
	case 0b111:
		return `\|/`
	default:
		return "   "
	}
}
