package component

// CornStock — запас кукурузы в хранилище.
// Current всегда в пределах [0, Initial].
type CornStock struct {
	Initial int
	Current int
}
