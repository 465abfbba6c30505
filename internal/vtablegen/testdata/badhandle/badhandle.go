package badhandle

type Handle struct{}

type table struct {
	Ok  func(h *Handle)
	Bad func(x int32)
}
