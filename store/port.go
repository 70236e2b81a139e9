package store

// Collection keys. Each collection is persisted verbatim as one JSON
// document under its key, mirroring the original local-storage layout.
const (
	KeyProviders    = "serviceProviders"
	KeyProfiles     = "localProfiles"
	KeyAppointments = "appointments"
	KeyUsers        = "users"
)

// Port is the snapshot persistence boundary of the store. Load returns
// (nil, nil) when the key has never been written.
type Port interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}
