package entity

import "time"

// Cliente representa un cliente del comercio. Puntos es el saldo de fidelidad;
// solo lo mutan las confirmaciones de reserva mediante un incremento atómico
// en la capa de persistencia (nunca load-modify-save del registro completo).
type Cliente struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	Puntos    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
