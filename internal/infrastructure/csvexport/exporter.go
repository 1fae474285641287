// Package csvexport renderiza listados de documentos a CSV plano (UTF-8,
// separado por comas) para descarga desde la UI.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jdvalencia/almacen-api/internal/application/export"
)

// Exporter implementa export.CSVExporter con encoding/csv.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

var _ export.CSVExporter = (*Exporter)(nil)

// TransfersCSV genera una fila por línea de traslado, con los datos de
// cabecera repetidos para que el archivo sea plano.
func (e *Exporter) TransfersCSV(docs []export.TransferDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"codigo", "fecha", "origen", "destino", "responsable", "estado", "producto", "lote", "cantidad"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, doc := range docs {
		for _, it := range doc.Items {
			record := []string{
				doc.Code,
				doc.CreatedAt.Format("2006-01-02"),
				doc.OriginName,
				doc.DestinationName,
				doc.Responsible,
				doc.Status,
				it.ProductName,
				it.LotNumber,
				strconv.Itoa(it.Quantity),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("csv: escribir traslado %s: %w", doc.Code, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PurchaseOrdersCSV genera una fila por línea de orden de compra.
func (e *Exporter) PurchaseOrdersCSV(docs []export.PurchaseOrderDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"codigo", "fecha", "proveedor", "estado", "producto", "cantidad", "precio_unitario", "impuesto", "total"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, doc := range docs {
		for _, it := range doc.Items {
			record := []string{
				doc.Code,
				doc.CreatedAt.Format("2006-01-02"),
				doc.Supplier,
				doc.Status,
				it.ProductName,
				strconv.Itoa(it.Quantity),
				it.UnitPrice.StringFixed(2),
				it.Tax.StringFixed(2),
				it.Total.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("csv: escribir orden %s: %w", doc.Code, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
