package client

// Progress observes a file transfer.
type Progress interface {
	Start(name string, total int64)
	Advance(n int)
	Done()
}

type nopProgress struct{}

func (nopProgress) Start(string, int64) {}
func (nopProgress) Advance(int)         {}
func (nopProgress) Done()               {}
