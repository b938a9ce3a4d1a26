package users

// User es la cuenta registrada. El password se guarda y compara en texto
// plano: es el modelo de seguridad heredado de la app original (un solo
// perfil de navegador) y queda explícitamente fuera de alcance endurecerlo.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"` // RFC3339
}
