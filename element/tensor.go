package element

// Engineering component order shared by every tensor-valued buffer crossing
// the element boundary. Symmetric tensors carry 6 components; full tensors
// carry 9. Consumers of symmetric tensors must never write the three extra
// slots: the YX/ZY/XZ indices alias their symmetric counterparts.
const (
	SymXX = 0
	SymYY = 1
	SymZZ = 2
	SymXY = 3
	SymYZ = 4
	SymZX = 5
	SymYX = SymXY
	SymZY = SymYZ
	SymXZ = SymZX
)

// Full (non-symmetric) tensor component order.
const (
	FullXX = 0
	FullYY = 1
	FullZZ = 2
	FullXY = 3
	FullYZ = 4
	FullZX = 5
	FullYX = 6
	FullZY = 7
	FullXZ = 8
)

// Component counts for integration-point fields.
const (
	NumScalarComponents     = 1
	NumSymTensorComponents  = 6
	NumFullTensorComponents = 9
)
