package pets

// PetType define los tipos de mascota que ofrece el formulario.
type PetType string

const (
	TypeDog    PetType = "dog"
	TypeCat    PetType = "cat"
	TypeBird   PetType = "bird"
	TypeRabbit PetType = "rabbit"
	TypeFish   PetType = "fish"
	TypeOther  PetType = "other"
)

// Pet es el perfil de una mascota. Pertenece a exactamente un usuario.
// Los tags JSON son el formato persistido (camelCase, heredado de los datos
// existentes) y deben mantenerse estables.
type Pet struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Name  string `json:"name"`
	Type  string `json:"type"` // ver PetType
	Breed string `json:"breed"`

	Age    float64 `json:"age"`    // años
	Weight float64 `json:"weight"` // kg

	Notes string `json:"notes"`

	CreatedAt string `json:"createdAt"` // RFC3339
}

func (p Pet) EntityID() string     { return p.ID }
func (p Pet) EntityUserID() string { return p.UserID }
