package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout formato de fecha-hora del documento ("2006-01-02 15:04:05").
// Los documentos escritos por versiones anteriores del sistema usan este
// formato plano, no RFC 3339.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout formato de fecha sola, usado en validade de alimentos.
const DateLayout = "2006-01-02"

// DateTime envuelve time.Time para serializar en el formato plano del documento.
type DateTime struct {
	time.Time
}

// Now devuelve la fecha-hora actual truncada a segundos (precisión del documento).
func Now() DateTime {
	return DateTime{time.Now().Truncate(time.Second)}
}

// NewDateTime construye un DateTime a partir de un time.Time.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Second)}
}

// String formato plano del documento.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateTimeLayout)
}

// MarshalJSON serializa como "2006-01-02 15:04:05"; el cero como cadena vacía.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta el formato plano, fecha sola, null y cadena vacía.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// null u otro literal: se trata como cero
		if strings.TrimSpace(string(b)) == "null" {
			d.Time = time.Time{}
			return nil
		}
		return err
	}
	if s == "" || s == "None" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{DateTimeLayout, DateLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha inválida: %q", s)
}
