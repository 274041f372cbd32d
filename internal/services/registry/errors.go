package registry

// RegistryError is a custom error type for registry errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

const (
	ErrGameAlreadyExists RegistryError = "game already exists for this channel"
	ErrGameNotFound      RegistryError = "game not found"
	ErrNilConfig         RegistryError = "config cannot be nil"
	ErrNilGameConfig     RegistryError = "game config cannot be nil"
	ErrNilInput          RegistryError = "input cannot be nil"
)
