package domain

// Snapshot holds the contents of a file as it was before the install ran.
type Snapshot struct {
	Path string
	Data []byte
	// Exists is false when the file was absent; restoring then means deleting it.
	Exists bool
	// Fingerprint is the xxhash of Data, zero when the file was absent.
	Fingerprint uint64
}

// Project groups the two snapshots taken for one invocation.
type Project struct {
	Manifest *Snapshot
	Lockfile *Snapshot
}
