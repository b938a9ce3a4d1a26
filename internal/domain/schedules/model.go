package schedules

// ActivityType define las actividades recordables.
type ActivityType string

const (
	ActivityFeeding    ActivityType = "feeding"
	ActivityWalk       ActivityType = "walk"
	ActivityMedication ActivityType = "medication"
	ActivityVet        ActivityType = "vet"
	ActivityGrooming   ActivityType = "grooming"
	ActivityOther      ActivityType = "other"
)

// Repeat define la recurrencia del recordatorio. Es puramente informativa:
// no hay scheduler, el valor solo se muestra.
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
)

// Schedule es un recordatorio de actividad para una mascota.
//
// PetID referencia a Pet.id pero NUNCA se valida contra la colección de
// mascotas: si la mascota se borra, el recordatorio queda con la referencia
// colgante. Comportamiento heredado y preservado (no hay borrado en cascada).
type Schedule struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PetID  string `json:"petId"`

	Type  string `json:"type"` // ver ActivityType
	Title string `json:"title"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM (24h)

	Notes  string `json:"notes"`
	Repeat string `json:"repeat"` // ver Repeat

	CreatedAt string `json:"createdAt"` // RFC3339
}

func (s Schedule) EntityID() string     { return s.ID }
func (s Schedule) EntityUserID() string { return s.UserID }

// sortKey ordena cronológicamente: con date en YYYY-MM-DD y time en HH:MM,
// la comparación lexicográfica de "date T time" equivale a comparar fechas.
func (s Schedule) sortKey() string {
	return s.Date + "T" + s.Time
}
