package storage

// StorageInterface defines the contract for archive operations. The
// synthesis engine itself never persists anything; the service layer
// archives collected snapshots and generated reports through this.
type StorageInterface interface {
	Store(filename string, data []byte) error
	Retrieve(filename string) ([]byte, error)
	List(prefix string) ([]string, error)
	Delete(filename string) error
}
