package store

import "context"

// Colecciones persistidas. Cada una es un único valor textual (JSON):
// las de entidades serializan una secuencia ordenada, CollectionCurrentUser
// serializa un solo registro (o está ausente).
const (
	CollectionUsers         = "users"
	CollectionCurrentUser   = "currentUser"
	CollectionPets          = "pets"
	CollectionSchedules     = "schedules"
	CollectionHealthRecords = "healthRecords"
)

// Store es el medio key-value donde vive todo el estado de PetPal.
// Write sobreescribe el valor completo de la colección (sin writes parciales
// observables). Read devuelve nil cuando la colección no existe.
//
// Si hay varios procesos escribiendo a la vez, gana el último write; no hay
// detección ni merge. Es una limitación aceptada del diseño, no un bug.
type Store interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
	Delete(ctx context.Context, collection string) error
}
