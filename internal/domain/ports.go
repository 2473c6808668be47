package domain

// FileWriter persists a rendered test class. The write is all-or-nothing:
// the full content lands at path or an error is returned.
type FileWriter interface {
	Write(path string, content []byte) error
}

// RepoLocator resolves the enclosing repository root for a directory, used to
// anchor relative output directories.
type RepoLocator interface {
	RepoRoot(path string) (string, bool)
}
