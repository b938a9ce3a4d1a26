// Package format tiene los helpers de presentación de fecha y hora que
// acompañan a los registros en las respuestas de la API.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date convierte "YYYY-MM-DD" a la forma de display "Jan 2, 2006".
// Input no parseable se devuelve tal cual: formatear nunca rompe el listado.
func Date(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// Time convierte "HH:MM" (24h) a "3:04 PM".
func Time(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return hhmm
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], ampm)
}
