package health

// RecordType define los tipos de registro de salud del formulario.
type RecordType string

const (
	TypeVaccination RecordType = "vaccination"
	TypeCheckup     RecordType = "checkup"
	TypeMedication  RecordType = "medication"
	TypeSurgery     RecordType = "surgery"
	TypeDental      RecordType = "dental"
	TypeOther       RecordType = "other"
)

// Record es una entrada del historial de salud de una mascota.
//
// NextDate es opcional ("próxima dosis/control"); se persiste como null
// cuando no aplica. PetID no se valida contra pets (misma referencia
// colgante que Schedule).
type Record struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PetID  string `json:"petId"`

	Type  string `json:"type"` // ver RecordType
	Title string `json:"title"`

	Date     string  `json:"date"`     // YYYY-MM-DD
	NextDate *string `json:"nextDate"` // YYYY-MM-DD o null

	Notes string `json:"notes"`

	CreatedAt string `json:"createdAt"` // RFC3339
}

func (r Record) EntityID() string     { return r.ID }
func (r Record) EntityUserID() string { return r.UserID }
