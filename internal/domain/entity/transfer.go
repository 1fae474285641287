package entity

import "time"

// TransferItem una línea de un traslado: qué lote de qué producto y cuánto.
// ProductName es una foto del nombre al momento de crear el documento; si el
// producto se renombra después, el traslado conserva el nombre histórico.
type TransferItem struct {
	ProductID   string
	ProductName string // snapshot, no join en vivo
	LotNumber   string
	Quantity    int // > 0
}

// Transfer representa un traslado de lotes entre dos bodegas.
// El stock físico solo se mueve al confirmar la recepción (RECEIVED);
// crear el documento no toca el libro de lotes.
type Transfer struct {
	ID            string
	Code          string // consecutivo legible, ej. TR-0001
	OriginID      string // bodega origen, distinta de la destino
	DestinationID string
	Items         []TransferItem
	ResponsibleID string
	Responsible   string // snapshot del nombre del responsable
	Status        string // SENT, RECEIVED, CANCELLED
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppendCancellationReason agrega el motivo de anulación a las notas sin
// sobrescribir lo anterior.
func (t *Transfer) AppendCancellationReason(reason string) {
	marker := "[ANULADO] " + reason
	if t.Notes == "" {
		t.Notes = marker
		return
	}
	t.Notes = t.Notes + "\n" + marker
}
