package ports

// SourceResolver resolves module ids to files.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve returns the absolute path of moduleID relative to baseDir.
	Resolve(moduleID, baseDir string) (string, error)
}
