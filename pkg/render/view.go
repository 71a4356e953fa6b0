package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/nelsonberm/go-srtm/pkg/outcome"
	"github.com/nelsonberm/go-srtm/pkg/reportstamp"
)

// emptyResultNotice is shown when a query succeeded but matched nothing.
const emptyResultNotice = "No se encontraron registros."

// BuildView projects an outcome into a View. It never performs I/O.
func BuildView(o outcome.Outcome) View {
	v := View{
		Badge:            outcome.Badge(o),
		Failed:           o.Failed(),
		Status:           outcome.StatusLine(o),
		Message:          o.Message,
		Note:             o.Note,
		Code:             o.Code,
		ValidationErrors: o.ValidationErrors,
	}

	if o.Timestamp != "" {
		v.Timestamp = reportstamp.FormatTransaction(o.Timestamp)
	}

	if o.Payload != nil {
		v.Payload = buildPayloadView(o.Payload)
	} else if !o.Failed() && o.Note == "" {
		v.Note = "La operación se completó sin datos adicionales."
	}

	if o.Guidance != nil {
		v.Guidance = &Guidance{Title: o.Guidance.Title, Items: o.Guidance.Items}
	}

	if len(o.AdditionalInfo) > 0 {
		v.AdditionalInfo = objectRows(o.AdditionalInfo)
	}

	if o.Failed() && o.Debug != nil {
		v.Debug = buildDebugPanel(o.Debug)
	}
	return v
}

func buildPayloadView(p *outcome.Payload) *PayloadView {
	switch p.Shape {
	case outcome.ShapeEmpty:
		return &PayloadView{Notice: emptyResultNotice}
	case outcome.ShapeObjectList:
		list, _ := p.Value.([]any)
		return &PayloadView{Table: buildTable(list)}
	case outcome.ShapeScalarList:
		list, _ := p.Value.([]any)
		items := make([]string, 0, len(list))
		for _, item := range list {
			items = append(items, formatValue(item))
		}
		return &PayloadView{Items: items}
	case outcome.ShapeSingleObject:
		obj, _ := p.Value.(map[string]any)
		rows := objectRows(obj)
		table := &Table{Columns: []string{"Campo", "Valor"}}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{row.Label, row.Value})
		}
		return &PayloadView{Table: table}
	default:
		return &PayloadView{Scalar: formatValue(p.Value)}
	}
}

// buildTable derives a column set from the union of keys across all
// records, sorted for a deterministic layout. Missing cells render
// empty.
func buildTable(records []any) *Table {
	keySet := map[string]struct{}{}
	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			keySet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(keySet))
	for k := range keySet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	table := &Table{Columns: columns}
	for _, rec := range records {
		row := make([]string, len(columns))
		if obj, ok := rec.(map[string]any); ok {
			for i, col := range columns {
				if val, present := obj[col]; present {
					row[i] = formatValue(val)
				}
			}
		} else {
			if len(row) > 0 {
				row[0] = formatValue(rec)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func objectRows(obj map[string]any) []Row {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Row{Label: k, Value: formatValue(obj[k])})
	}
	return rows
}

// formatValue renders a decoded JSON value for display. Nested
// structures collapse to compact JSON one level deep.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Sí"
		}
		return "No"
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}

func buildDebugPanel(d *outcome.Debug) *DebugPanel {
	panel := &DebugPanel{Title: "Información de depuración"}
	add := func(label, value string) {
		if value != "" {
			panel.Rows = append(panel.Rows, Row{Label: label, Value: value})
		}
	}
	add("Origen", d.Origin)
	add("URL", d.URL)
	add("Método", d.Method)
	add("Endpoint", d.Endpoint)
	add("Fecha y hora", reportstamp.Format(d.Timestamp))
	add("ID de transacción", d.TransactionID)
	return panel
}
