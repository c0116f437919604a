package vm

// objectcode.go defines the assembler's output: a relocatable block of encoded words tagged with
// the address it is destined for.

// ObjectCode is a data structure that holds code and its origin offset in memory. Code may be
// comprised of either instructions or data; the assembler does not distinguish between the two
// once they are encoded.
type ObjectCode struct {
	Orig Word
	Code []Word
}
