package entity

// Estados de los documentos de inventario (traslados, remisiones, órdenes).
// La máquina es monotónica: SENT -> RECEIVED o SENT -> CANCELLED, sin salida
// de los estados terminales.
const (
	StatusSent      = "SENT"
	StatusReceived  = "RECEIVED"
	StatusCancelled = "CANCELLED"
)

// IsTerminalStatus indica si el estado no admite más transiciones.
func IsTerminalStatus(s string) bool {
	return s == StatusReceived || s == StatusCancelled
}
