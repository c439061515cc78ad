package ports

// Memo is an in-process map from a logical identity to an already computed output.
//
//go:generate go run go.uber.org/mock/mockgen -source=memo.go -destination=mocks/mock_memo.go -package=mocks
type Memo interface {
	// Get returns the output stored for identity.
	Get(identity string) (string, bool)
	// Put stores output for identity.
	Put(identity, output string)
}
