// Package projections provides ready-made summary projections over the
// Station-Manager domain types, built on the automap Mapper.
package projections

import (
	"github.com/Station-Manager/automap"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
)

// maxNameLength caps operator names in list views.
const maxNameLength = 100

// QsoSummary is a log-view projection of a types.Qso: the contact fields a
// list display needs, nothing more. Field names match the promoted fields
// of types.Qso, so the mapper fills it without per-field code.
type QsoSummary struct {
	Band            string
	Mode            string
	QsoDate         string
	TimeOn          string
	Call            string
	Country         string
	Name            string
	StationCallsign string
}

// QsoSummaries projects a slice of QSO types into summaries, normalizing
// each entry during conversion. It returns the projected slice and an
// error if any entry fails to map.
func QsoSummaries(m *automap.Mapper, slice types.QsoSlice) ([]QsoSummary, error) {
	const op errors.Op = "projections.QsoSummaries"

	result := make([]QsoSummary, 0, len(slice))
	for i := range slice {
		summary, err := automap.Make[QsoSummary](m, &slice[i])
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		result = append(result, normalizeSummary(summary))
	}
	return result, nil
}

func normalizeSummary(s QsoSummary) QsoSummary {
	if len(s.Name) > maxNameLength {
		s.Name = s.Name[:maxNameLength]
	}
	return s
}
